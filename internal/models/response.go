package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type OrderResponse struct {
	ID                    string     `json:"id"`
	CustomerName          string     `json:"customer_name"`
	Contact               string     `json:"contact"`
	FileName              string     `json:"file_name"`
	FileURL               *string    `json:"file_url"`
	FilePath              *string    `json:"file_path"`
	FileExpiresAt         *time.Time `json:"file_expires_at"`
	FileDeleted           bool       `json:"file_deleted"`
	PaymentProofURL       *string    `json:"payment_proof_url"`
	PaymentProofPath      *string    `json:"payment_proof_path"`
	PaymentProofExpiresAt *time.Time `json:"payment_proof_expires_at"`
	PaymentProofDeleted   bool       `json:"payment_proof_deleted"`
	ColorMode             string     `json:"color_mode"`
	Copies                int        `json:"copies"`
	Pages                 int        `json:"pages"`
	PaperSize             string     `json:"paper_size"`
	Status                string     `json:"status"`
	EstimatedTime         int        `json:"estimated_time"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// TrackingResponse is the restricted projection returned for public
// tracking lookups. Contact details and file locations stay private.
type TrackingResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	FileName      string    `json:"file_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	EstimatedTime int       `json:"estimated_time"`
}

type UploadResponse struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileURL  string `json:"fileUrl"`
}

type DeleteFileResponse struct {
	Deleted bool `json:"deleted"`
}

type CleanupResponse struct {
	DeletedFiles         []string `json:"deleted_files"`
	DeletedPaymentProofs []string `json:"deleted_payment_proofs"`
}

type QueueResponse struct {
	Count         int `json:"count"`
	EstimatedTime int `json:"estimated_time"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewOrderResponse(o Order) OrderResponse {
	resp := OrderResponse{
		ID:                  o.ID.String(),
		CustomerName:        o.CustomerName,
		Contact:             o.Contact,
		FileName:            o.FileName,
		FileDeleted:         o.FileDeleted,
		PaymentProofDeleted: o.PaymentProofDeleted,
		ColorMode:           string(o.ColorMode),
		Copies:              o.Copies,
		Pages:               o.Pages,
		PaperSize:           o.PaperSize,
		Status:              string(o.Status),
		EstimatedTime:       o.EstimatedTime,
		CreatedAt:           o.CreatedAt,
	}
	if o.FileURL.Valid {
		resp.FileURL = &o.FileURL.String
	}
	if o.FilePath.Valid {
		resp.FilePath = &o.FilePath.String
	}
	if o.FileExpiresAt.Valid {
		resp.FileExpiresAt = &o.FileExpiresAt.Time
	}
	if o.PaymentProofURL.Valid {
		resp.PaymentProofURL = &o.PaymentProofURL.String
	}
	if o.PaymentProofPath.Valid {
		resp.PaymentProofPath = &o.PaymentProofPath.String
	}
	if o.PaymentProofExpiresAt.Valid {
		resp.PaymentProofExpiresAt = &o.PaymentProofExpiresAt.Time
	}
	if o.Notes.Valid {
		resp.Notes = o.Notes.String
	}
	return resp
}

func NewTrackingResponse(o Order) TrackingResponse {
	return TrackingResponse{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		FileName:      o.FileName,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		EstimatedTime: o.EstimatedTime,
	}
}
