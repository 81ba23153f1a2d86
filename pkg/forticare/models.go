package forticare

// Token is the credential pair returned by the CustomerAuth token endpoint.
// The refresh token is kept for completeness but never exercised; the tool
// runs once and exits well within the access token's lifetime.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Message      string `json:"message"`
}

// Asset is one registered hardware unit from the products/list call.
type Asset struct {
	SerialNumber     string `json:"serialNumber"`
	Description      string `json:"description"`
	ProductModel     string `json:"productModel"`
	IsDecommissioned bool   `json:"isDecommissioned"`
	RegistrationDate string `json:"registrationDate"`
}

// WarrantySupport is one support contract attached to an asset.
type WarrantySupport struct {
	TypeDesc  string `json:"typeDesc"`
	LevelDesc string `json:"levelDesc"`
	EndDate   string `json:"endDate"`
}

type listAssetsRequest struct {
	ExpireBefore string `json:"expireBefore"`
}

type listAssetsResponse struct {
	Assets  []Asset `json:"assets"`
	Message string  `json:"message"`
}

type productDetailsRequest struct {
	SerialNumber string `json:"serialNumber"`
}

// AssetDetails is the detail block of a products/details response.
// WarrantySupports is null for units with no support contracts on file.
type AssetDetails struct {
	SerialNumber     string            `json:"serialNumber"`
	Description      string            `json:"description"`
	ProductModel     string            `json:"productModel"`
	WarrantySupports []WarrantySupport `json:"warrantySupports"`
}

// ProductDetailsResponse is the full products/details envelope.
type ProductDetailsResponse struct {
	AssetDetails AssetDetails `json:"assetDetails"`
	Message      string       `json:"message"`
}

type loginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	ClientID  string `json:"client_id"`
	GrantType string `json:"grant_type"`
}
