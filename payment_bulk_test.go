package fincode

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentBulkCreate_Multipart(t *testing.T) {
	t.Parallel()

	const csv = "customer_id,card_id,amount\nc_1,cs_1,1000\n"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments/bulk", r.URL.Path)
		assert.Equal(t, "pay_type=Card&process_plan_date=2024%2F04%2F01", r.URL.RawQuery)
		assert.Equal(t, "idem-bulk", r.Header.Get("idempotent_key"))

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.NotEmpty(t, params["boundary"])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "march.csv", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, csv, string(content))

		w.Write([]byte(`{"id":"b_1","pay_type":"Card","status":"UPLOADED","total_count":1}`))
	})

	bulk, err := client.PaymentBulks.Create(context.Background(), CreatePaymentBulkRequest{
		PayType:         PayTypeCard,
		ProcessPlanDate: "2024/04/01",
		FileName:        "march.csv",
		File:            strings.NewReader(csv),
	}, &RequestOptions{IdempotencyKey: "idem-bulk"})

	require.NoError(t, err)
	assert.Equal(t, "b_1", bulk.ID)
	assert.Equal(t, 1, bulk.TotalCount)
}

func TestPaymentBulkCreate_DefaultFileName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "payments.csv", header.Filename)
		w.Write([]byte(`{"id":"b_2"}`))
	})

	_, err := client.PaymentBulks.Create(context.Background(), CreatePaymentBulkRequest{
		PayType: PayTypeCard,
		File:    strings.NewReader("c_1,cs_1,1\n"),
	}, nil)
	require.NoError(t, err)
}

func TestPaymentBulkCreate_RequiresFile(t *testing.T) {
	t.Parallel()

	doer := new(mockDoer)
	client, err := NewClient(testKey, WithHTTPClient(doer))
	require.NoError(t, err)

	_, err = client.PaymentBulks.Create(context.Background(), CreatePaymentBulkRequest{PayType: PayTypeCard}, nil)

	assert.True(t, IsConfigurationError(err))
	doer.AssertNotCalled(t, "Do", mock.Anything)
}

func TestFailedLines(t *testing.T) {
	t.Parallel()

	page := &List[PaymentBulkDetail]{List: []PaymentBulkDetail{
		{ID: "d_1", Status: "CAPTURED"},
		{ID: "d_2", Status: "ERROR", Errors: []APIErrorObject{{Code: "E9993134002", Message: "declined"}}},
		{ID: "d_3", Status: "CAPTURED"},
	}}

	failed := FailedLines(page)
	require.Len(t, failed, 1)
	assert.Equal(t, "d_2", failed[0].ID)
	assert.Equal(t, CategoryPayment, failed[0].Errors[0].Category())

	assert.Nil(t, FailedLines(nil))
}
