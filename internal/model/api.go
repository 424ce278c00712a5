package model

// CreateFormRequest is the body of POST /api/forms
type CreateFormRequest struct {
	Title       string     `json:"title"`
	HeaderImage string     `json:"headerImage"`
	Questions   []Question `json:"questions" validate:"dive"`
}

// SubmitResponseRequest is the body of POST /api/forms/{id}/responses
type SubmitResponseRequest struct {
	Answers []Answer `json:"answers" validate:"dive"`
}

// UploadResult is returned by the upload endpoint
type UploadResult struct {
	Success bool   `json:"success,omitempty"`
	URL     string `json:"url,omitempty"`
}

// FormEnvelope wraps a single form in API responses
type FormEnvelope struct {
	Success bool   `json:"success"`
	Form    *Form  `json:"form,omitempty"`
	Message string `json:"message,omitempty"`
}

// FormListEnvelope wraps a list of forms
type FormListEnvelope struct {
	Success bool    `json:"success"`
	Forms   []*Form `json:"forms"`
}

// ResponseEnvelope wraps a submitted response
type ResponseEnvelope struct {
	Success  bool      `json:"success"`
	Response *Response `json:"response,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// ResponseListEnvelope wraps the responses of a form
type ResponseListEnvelope struct {
	Success   bool        `json:"success"`
	Responses []*Response `json:"responses"`
}

// ErrorEnvelope is the body of every failed API call
type ErrorEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}
