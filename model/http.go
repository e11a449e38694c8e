package model

type RewriteRequestBody struct {
	Old []string `json:"old"`
	New string   `json:"new"`
}

type RewriteResult struct {
	Old          string `json:"old"`
	New          string `json:"new"`
	Declarations int    `json:"declarations"`
	Lines        int    `json:"lines"`
	Slots        int    `json:"slots"`
	Protected    int    `json:"protected"`
}

type RewriteResponse struct {
	Results []RewriteResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
