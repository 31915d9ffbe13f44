package handler

// --- Request / Response types ---

// CreateBankRequest is the validated body of POST /v1/banks.
type CreateBankRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
	Code string `json:"code" validate:"required,alphanum,len=3"`
}

// BankIDRequest identifies a bank in the request path.
type BankIDRequest struct {
	ID string `param:"id" json:"-" validate:"required,max=64"`
}

type bankResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	OwnerID   int64  `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}
