package errors

// Body is the JSON shape errors take on the web surface
type Body struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ToHTTP returns the status and response body for err
func ToHTTP(err error) (int, Body) {
	code := GetCode(err)
	return code.HTTPStatus(), Body{
		Code:    code,
		Message: GetMessage(err),
		Meta:    GetMeta(err),
	}
}
