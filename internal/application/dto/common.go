package dto

// ErrorResponse cuerpo de error HTTP. Cada error del dominio se mapea a un
// código estable y un mensaje con la razón concreta; nunca un "failed" genérico.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
