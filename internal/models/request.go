package models

type CreateOrderRequest struct {
	CustomerName     string  `json:"customer_name" binding:"required"`
	Contact          string  `json:"contact" binding:"required"`
	FileName         string  `json:"file_name" binding:"required"`
	FileURL          *string `json:"file_url,omitempty"`
	FilePath         *string `json:"file_path,omitempty"`
	PaymentProofURL  *string `json:"payment_proof_url,omitempty"`
	PaymentProofPath *string `json:"payment_proof_path,omitempty"`
	ColorMode        string  `json:"color_mode" binding:"required,oneof=bw color"`
	Copies           int     `json:"copies" binding:"required,gt=0"`
	Pages            int     `json:"pages" binding:"required,gt=0"`
	PaperSize        string  `json:"paper_size" binding:"required,oneof=A4"`
	Notes            string  `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// DeleteFileRequest selects the artifact to purge. Type defaults to the
// print document; "payment_proof" selects the proof instead.
type DeleteFileRequest struct {
	ID   string `json:"id" binding:"required"`
	Type string `json:"type,omitempty" binding:"omitempty,oneof=file payment_proof"`
}
