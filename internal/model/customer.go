package model

type Customer struct {
	BaseModel
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"` // Empty means no contact number
}

func (c Customer) HasContact() bool {
	return c.Phone != ""
}
