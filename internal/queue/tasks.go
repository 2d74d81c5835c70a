package queue

import (
	"encoding/json"

	"github.com/soukly/soukly/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskWhatsAppOTP delivers a verification code over WhatsApp.
	TaskWhatsAppOTP = constants.TaskWhatsAppOTP
	// TaskWhatsAppOrder delivers an order message to a seller over WhatsApp.
	TaskWhatsAppOrder = constants.TaskWhatsAppOrder
)

// WhatsAppOTPPayload carries a verification code send.
type WhatsAppOTPPayload struct {
	Phone  string `json:"phone"`
	Code   string `json:"code"`
	Locale string `json:"locale"`
}

// WhatsAppOrderPayload carries an order message for one seller.
type WhatsAppOrderPayload struct {
	SellerID uint   `json:"seller_id"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// NewWhatsAppOTPTask builds an OTP delivery task.
func NewWhatsAppOTPTask(payload WhatsAppOTPPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWhatsAppOTP, body), nil
}

// NewWhatsAppOrderTask builds an order delivery task.
func NewWhatsAppOrderTask(payload WhatsAppOrderPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWhatsAppOrder, body), nil
}
