package repository

import (
	"context"
	"sort"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReceiptsQuoteIDIndex is the GSI used to list receipts of a quote.
const ReceiptsQuoteIDIndex = "quote_id-index"

type paymentReceiptItem struct {
	ID         string                 `dynamodbav:"id"`
	QuoteID    string                 `dynamodbav:"quote_id"`
	Amount     float64                `dynamodbav:"amount"`
	Currency   string                 `dynamodbav:"currency"`
	Date       string                 `dynamodbav:"date"`
	Status     string                 `dynamodbav:"status"`
	MPPayload  map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	PayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentReceiptDynamoRepository persists PaymentReceipt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type PaymentReceiptDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentReceiptRepository = (*PaymentReceiptDynamoRepository)(nil)

func NewPaymentReceiptDynamoRepository(ddb DynamoAPI, tableName string) *PaymentReceiptDynamoRepository {
	return &PaymentReceiptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentReceiptDynamoRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toPaymentReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentReceipt{}, nil
	}

	var it paymentReceiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentReceipt{}, err
	}
	return fromPaymentReceiptItem(it), nil
}

// ListByQuoteID returns the quote's receipts, newest first.
func (r *PaymentReceiptDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ReceiptsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentReceiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentReceiptItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toPaymentReceiptItem(p entities.PaymentReceipt) paymentReceiptItem {
	return paymentReceiptItem{
		ID:         p.ID,
		QuoteID:    p.QuoteID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Date:       formatTime(p.Date),
		Status:     string(p.Status),
		MPPayload:  p.ProviderPayload,
		PayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentReceiptItem(it paymentReceiptItem) entities.PaymentReceipt {
	return entities.PaymentReceipt{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Amount:             it.Amount,
		Currency:           it.Currency,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.MPPayload,
		ProviderPayloadRaw: []byte(it.PayloadRaw),
	}
}
