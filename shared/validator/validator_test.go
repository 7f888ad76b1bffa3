package validator_test

import (
	"strings"
	"testing"

	"hallbook/shared/failure"
	"hallbook/shared/validator"

	"github.com/stretchr/testify/assert"
)

type createPaymentBody struct {
	Mode   string  `json:"mode"   validate:"required,oneof=cash card upi banktransfer"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Person string  `json:"person" validate:"omitempty,max=100"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := strings.NewReader(`{"mode":"upi","amount":5000,"person":"Priya"}`)

	var req createPaymentBody
	err := validator.Validate(body, &req)

	assert.NoError(t, err)
	assert.Equal(t, "upi", req.Mode)
	assert.Equal(t, 5000.0, req.Amount)
}

func TestValidate_InvalidEnum(t *testing.T) {
	body := strings.NewReader(`{"mode":"cheque","amount":100}`)

	var req createPaymentBody
	err := validator.Validate(body, &req)

	assert.Error(t, err)

	var fail *failure.Failure
	assert.ErrorAs(t, err, &fail)
	assert.Contains(t, fail.Message, "must be one of")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"mode":`)

	var req createPaymentBody
	err := validator.Validate(body, &req)

	assert.Error(t, err)
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	req := createPaymentBody{Amount: 10}
	err := validator.ValidateStruct(&req)

	assert.Error(t, err)

	var fail *failure.Failure
	assert.ErrorAs(t, err, &fail)
	assert.Contains(t, fail.Message, "is required")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("morning", "oneof=morning evening fullday"))
	assert.Error(t, validator.ValidateVar("midnight", "oneof=morning evening fullday"))
}
