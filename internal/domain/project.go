package domain

// Project is a construction project. Records in every dataset belong to
// exactly one project via ProjectID. The ID is opaque and generated at
// creation; CreatedAt is an RFC3339 timestamp.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
