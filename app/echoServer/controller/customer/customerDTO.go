package customer

type CreateCustomerReq struct {
	Name string `json:"name" validate:"required"`
	CPF  string `json:"cpf" validate:"required,len=11,numeric"`
}
