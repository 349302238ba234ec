package dto

// PageRequest paginación opcional para listados. Limit 0 devuelve todo.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// Bounds devuelve el rango [start, end) de la página sobre n elementos.
func (p PageRequest) Bounds(n int) (start, end int) {
	start = min(max(p.Offset, 0), n)
	if p.Limit <= 0 {
		return start, n
	}
	return start, min(start+p.Limit, n)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
