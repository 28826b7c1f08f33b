package dto

type PreferenceInput struct {
	Units string  `json:"units"`
	Bio   *string `json:"bio"`
}

type PreferenceOutput struct {
	Units string  `json:"units"`
	Bio   *string `json:"bio"`
}
