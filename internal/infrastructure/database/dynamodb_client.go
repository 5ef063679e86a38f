package database

import (
	"context"
	"errors"
	"log"

	"freight_portal/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates the DynamoDB client holding the portal's own state
// (wizard drafts, payment receipts). A configured endpoint points the client
// at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		// DynamoDB Local ignores credentials but the SDK still signs requests.
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// TableSpec describes a table the portal expects: a string "id" key plus
// optional string-keyed global secondary indexes.
type TableSpec struct {
	Name    string
	Indexes map[string]string // index name -> partition key attribute
}

// EnsureTables creates missing tables with on-demand billing. Used against
// DynamoDB Local; in AWS the tables are provisioned ahead of time.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs ...TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return err
		}

		attrs := []types.AttributeDefinition{{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS}}
		var gsis []types.GlobalSecondaryIndex
		for name, key := range spec.Indexes {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
			gsis = append(gsis, types.GlobalSecondaryIndex{
				IndexName:  aws.String(name),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			})
		}

		_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:              aws.String(spec.Name),
			AttributeDefinitions:   attrs,
			KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
			GlobalSecondaryIndexes: gsis,
			BillingMode:            types.BillingModePayPerRequest,
		})
		if err != nil {
			return err
		}
		log.Printf("[database][dynamodb] table created name=%s indexes=%d", spec.Name, len(gsis))
	}
	return nil
}
