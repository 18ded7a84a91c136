package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-statements/internal/errors"
	"bank-statements/internal/ledger"
	"bank-statements/internal/rates"
	"bank-statements/internal/service"
)

func newService() *service.BankService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewBankService(ledger.New(), rates.New(), logger)
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *errors.AppError, got %T", err)
	return appErr.Code
}

func TestRecordTransaction_ReturnsIdAndHistory(t *testing.T) {
	s := newService()

	result, err := s.RecordTransaction("20230505", "AC001", "D", "100.00")
	require.NoError(t, err)
	assert.Equal(t, "20230505-01", result.Transaction.ID)

	result, err = s.RecordTransaction("20230505", "AC001", "W", "50.00")
	require.NoError(t, err)
	assert.Equal(t, "20230505-02", result.Transaction.ID)
	require.Len(t, result.History, 2)
	assert.Equal(t, "20230505-01", result.History[0].ID)
	assert.Equal(t, "20230505-02", result.History[1].ID)
}

func TestRecordTransaction_InputValidation(t *testing.T) {
	s := newService()

	cases := []struct {
		name                       string
		date, account, typ, amount string
		want                       errors.ErrorCode
	}{
		{"malformed date", "2023-06-01", "AC001", "D", "10.00", errors.InvalidDate},
		{"impossible date", "20230231", "AC001", "D", "10.00", errors.InvalidDate},
		{"unparseable amount", "20230601", "AC001", "D", "ten", errors.InvalidAmount},
		{"negative amount", "20230601", "AC001", "D", "-10.00", errors.InvalidAmount},
		{"too many decimals", "20230601", "AC001", "D", "10.001", errors.InvalidAmount},
		{"bad type", "20230601", "AC001", "X", "10.00", errors.InvalidInput},
		{"empty account", "20230601", "", "D", "10.00", errors.InvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.RecordTransaction(tc.date, tc.account, tc.typ, tc.amount)
			require.Error(t, err)
			assert.Equal(t, tc.want, appCode(t, err))
		})
	}
}

func TestDefineRate_ReturnsSortedRules(t *testing.T) {
	s := newService()

	_, err := s.DefineRate("20230615", "RULE03", "2.20")
	require.NoError(t, err)
	rules, err := s.DefineRate("20230101", "RULE01", "1.95")
	require.NoError(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, "RULE01", rules[0].RuleID)
	assert.Equal(t, "RULE03", rules[1].RuleID)
}

func TestDefineRate_Validation(t *testing.T) {
	s := newService()

	_, err := s.DefineRate("202301", "RULE01", "2.20")
	assert.Equal(t, errors.InvalidDate, appCode(t, err))

	_, err = s.DefineRate("20230101", "RULE01", "abc")
	assert.Equal(t, errors.InvalidRate, appCode(t, err))

	_, err = s.DefineRate("20230101", "RULE01", "100")
	assert.Equal(t, errors.InvalidRate, appCode(t, err))
}

func TestGetStatement(t *testing.T) {
	s := newService()

	_, err := s.GetStatement("AC001", "2023-06")
	assert.Equal(t, errors.InvalidDate, appCode(t, err))

	_, err = s.GetStatement("AC001", "202306")
	assert.Equal(t, errors.AccountNotFound, appCode(t, err))

	_, err = s.RecordTransaction("20230505", "AC001", "D", "100.00")
	require.NoError(t, err)

	_, err = s.GetStatement("AC001", "202306")
	assert.Equal(t, errors.NoActivity, appCode(t, err))

	stmt, err := s.GetStatement("AC001", "202305")
	require.NoError(t, err)
	require.Len(t, stmt.Lines, 1)
	assert.Equal(t, "20230505-01", stmt.Lines[0].TransactionID)
}
