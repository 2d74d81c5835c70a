package worker

import (
	"context"
	"encoding/json"

	"github.com/soukly/soukly/internal/i18n"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/provider"
	"github.com/soukly/soukly/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer processes queued WhatsApp deliveries.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskWhatsAppOTP, c.handleWhatsAppOTP)
	mux.HandleFunc(queue.TaskWhatsAppOrder, c.handleWhatsAppOrder)
}

func (c *Consumer) handleWhatsAppOTP(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_whatsapp_otp_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WhatsAppOTPPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_whatsapp_otp_unmarshal_failed", "error", err)
		return err
	}
	if payload.Phone == "" || payload.Code == "" {
		logger.Debugw("worker_whatsapp_otp_skip_invalid_payload", "phone", payload.Phone)
		return nil
	}
	if c.WhatsAppClient == nil || !c.WhatsAppClient.Enabled() {
		logger.Debugw("worker_whatsapp_otp_skip_client_disabled", "phone", payload.Phone)
		return nil
	}

	body := i18n.Sprintf(i18n.NormalizeLang(payload.Locale), "otp.message", payload.Code)
	if err := c.WhatsAppClient.SendText(ctx, payload.Phone, body); err != nil {
		logger.Warnw("worker_whatsapp_otp_send_failed", "phone", payload.Phone, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleWhatsAppOrder(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_whatsapp_order_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WhatsAppOrderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_whatsapp_order_unmarshal_failed", "error", err)
		return err
	}
	if payload.Phone == "" || payload.Message == "" {
		logger.Debugw("worker_whatsapp_order_skip_invalid_payload", "seller_id", payload.SellerID)
		return nil
	}
	if c.WhatsAppClient == nil || !c.WhatsAppClient.Enabled() {
		logger.Debugw("worker_whatsapp_order_skip_client_disabled", "seller_id", payload.SellerID)
		return nil
	}

	if err := c.WhatsAppClient.SendText(ctx, payload.Phone, payload.Message); err != nil {
		logger.Warnw("worker_whatsapp_order_send_failed",
			"seller_id", payload.SellerID,
			"phone", payload.Phone,
			"error", err,
		)
		return err
	}
	return nil
}
