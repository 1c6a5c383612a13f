// Package sms delivers best-effort text notifications through Twilio.
package sms

import (
	"context"

	"github.com/GlebRadaev/paytrace/pkg/validate"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageAPI is the part of the Twilio REST client the sender uses.
type MessageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type Sender struct {
	api  MessageAPI
	from string
}

// New returns a Twilio-backed sender, or a disabled one when any credential is missing.
func New(accountSID, authToken, from string) *Sender {
	if accountSID == "" || authToken == "" || from == "" {
		zap.L().Info("sms disabled: twilio credentials not configured")
		return &Sender{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewWithAPI(client.Api, from)
}

func NewWithAPI(api MessageAPI, from string) *Sender {
	return &Sender{api: api, from: from}
}

func (s *Sender) Enabled() bool {
	return s.api != nil
}

// Send reports whether the provider accepted the message. It never fails the caller.
func (s *Sender) Send(_ context.Context, phone, text string) bool {
	if !s.Enabled() {
		zap.L().Debug("sms skipped, sender disabled", zap.String("to", phone))
		return false
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(validate.E164(phone))
	params.SetFrom(s.from)
	params.SetBody(text)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		zap.L().Warn("sms not delivered", zap.String("to", phone), zap.Error(err))
		return false
	}
	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	zap.L().Info("sms sent", zap.String("to", phone), zap.String("sid", sid))
	return true
}
