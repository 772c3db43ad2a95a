package model

// Response is the envelope every endpoint answers with. Data is omitted on
// failures, Message on plain successes.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	StatusCode int         `json:"statusCode"`
}

func Ok(status int, data interface{}) Response {
	return Response{Success: true, Data: data, StatusCode: status}
}

func Fail(status int, message string) Response {
	return Response{Success: false, Message: message, StatusCode: status}
}
