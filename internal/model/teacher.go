package model

// Teacher is a row of the teachers collection.
type Teacher struct {
	Code    string `json:"teach_code"`
	Name    string `json:"teach_name"`
	Surname string `json:"teach_surname"`
	Email   string `json:"teach_email"`
}
