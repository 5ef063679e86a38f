package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type wizardDraftItem struct {
	ID               string              `dynamodbav:"id"`
	OwnerID          string              `dynamodbav:"owner_id"`
	Step             string              `dynamodbav:"step"`
	Form             entities.WizardForm `dynamodbav:"form"`
	Estimates        []entities.Estimate `dynamodbav:"estimates"`
	SelectedEstimate *int                `dynamodbav:"selected_estimate,omitempty"`
	QuoteID          string              `dynamodbav:"quote_id,omitempty"`
	ShipmentID       string              `dynamodbav:"shipment_id,omitempty"`
	Compensation     string              `dynamodbav:"compensation,omitempty"`
	Version          int                 `dynamodbav:"version"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
}

// WizardDraftDynamoRepository persists quote wizard drafts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Saves are conditional on the stored version so that two concurrent requests
// on one draft cannot both win (e.g. a double submit).
type WizardDraftDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWizardDraftRepository = (*WizardDraftDynamoRepository)(nil)

func NewWizardDraftDynamoRepository(ddb DynamoAPI, tableName string) *WizardDraftDynamoRepository {
	return &WizardDraftDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WizardDraftDynamoRepository) Create(ctx context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
	d.Version = 1
	av, err := attributevalue.MarshalMap(toWizardDraftItem(d))
	if err != nil {
		return entities.WizardDraft{}, err
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
		return entities.WizardDraft{}, err
	}
	return d, nil
}

func (r *WizardDraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.WizardDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WizardDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.WizardDraft{}, nil
	}

	var it wizardDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WizardDraft{}, err
	}
	return fromWizardDraftItem(it), nil
}

// Save replaces the draft when the stored version still matches d.Version.
// UpdatedAt is kept as given and only stamped when unset.
func (r *WizardDraftDynamoRepository) Save(ctx context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
	expected := d.Version
	d.Version = expected + 1
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toWizardDraftItem(d))
	if err != nil {
		return entities.WizardDraft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WizardDraft{}, entities.ErrDraftConflict
		}
		return entities.WizardDraft{}, err
	}
	return d, nil
}

func toWizardDraftItem(d entities.WizardDraft) wizardDraftItem {
	estimates := d.Estimates
	if estimates == nil {
		estimates = []entities.Estimate{}
	}
	return wizardDraftItem{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		Step:             string(d.Step),
		Form:             d.Form,
		Estimates:        estimates,
		SelectedEstimate: d.SelectedEstimate,
		QuoteID:          d.QuoteID,
		ShipmentID:       d.ShipmentID,
		Compensation:     string(d.Compensation),
		Version:          d.Version,
		CreatedAt:        formatTime(d.CreatedAt),
		UpdatedAt:        formatTime(d.UpdatedAt),
	}
}

func fromWizardDraftItem(it wizardDraftItem) entities.WizardDraft {
	estimates := it.Estimates
	if estimates == nil {
		estimates = []entities.Estimate{}
	}
	return entities.WizardDraft{
		ID:               it.ID,
		OwnerID:          it.OwnerID,
		Step:             entities.WizardStep(it.Step),
		Form:             it.Form,
		Estimates:        estimates,
		SelectedEstimate: it.SelectedEstimate,
		QuoteID:          it.QuoteID,
		ShipmentID:       it.ShipmentID,
		Compensation:     entities.Compensation(it.Compensation),
		Version:          it.Version,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
