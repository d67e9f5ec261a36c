package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSender_SendVerificationCode_ConfigMissing(t *testing.T) {
	tests := []struct {
		name   string
		sender *Sender
	}{
		{name: "no host", sender: NewSender("", 465, "user", "pass", "from@example.com")},
		{name: "no user", sender: NewSender("smtp.example.com", 465, "", "pass", "from@example.com")},
		{name: "no from", sender: NewSender("smtp.example.com", 465, "user", "pass", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sender.SendVerificationCode("to@example.com", "1234", TemplateLogin)
			assert.ErrorIs(t, err, ErrDelivery)
		})
	}
}

func TestSender_SendVerificationCode_EmptyRecipient(t *testing.T) {
	s := NewSender("smtp.example.com", 465, "user", "pass", "from@example.com")

	err := s.SendVerificationCode("  ", "1234", TemplateReset)
	assert.ErrorIs(t, err, ErrDelivery)
}
