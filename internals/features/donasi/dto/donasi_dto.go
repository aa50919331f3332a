package dto

type CreateDonasiRequest struct {
	Nama    string `json:"nama" form:"nama" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Nominal int    `json:"nominal" form:"nominal" validate:"required,gt=0"`
	Pesan   string `json:"pesan,omitempty" form:"pesan"`
}
