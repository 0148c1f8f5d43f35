package models

// ClaimLog is the claim record exchanged with both backends. The ledger
// keeps the caller-supplied fields; the fallback store additionally
// assigns ID and CreatedAt. All fields use omitempty so an empty ledger
// commit result renders as an empty object.
type ClaimLog struct {
	ID         string `json:"id,omitempty"`
	ClaimID    string `json:"claimId,omitempty"`
	FarmerName string `json:"farmerName,omitempty"`
	CropType   string `json:"cropType,omitempty"`
	Status     string `json:"status,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// RequiredFields lists the fields a claim log must carry before either
// backend is touched.
var RequiredFields = []string{"claimId", "farmerName", "cropType", "status"}

// Valid reports whether every required field is present and non-empty.
func (c ClaimLog) Valid() bool {
	return c.ClaimID != "" && c.FarmerName != "" && c.CropType != "" && c.Status != ""
}
