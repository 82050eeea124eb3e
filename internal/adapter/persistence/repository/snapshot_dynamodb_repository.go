package repository

import (
	"context"
	"time"

	"mvz_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "form_snapshots"

// DynamoAPI is the subset of the DynamoDB client the snapshot store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type snapshotItem struct {
	Key       string `dynamodbav:"key"`
	Payload   []byte `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists contact snapshots in DynamoDB.
//
// Table requirements:
//   - PK: key (string), the namespaced client key
//
// Payloads are stored opaque; the use case owns their JSON shape.

type SnapshotDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISnapshotStore = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb DynamoAPI, tableName string) *SnapshotDynamoRepository {
	if tableName == "" {
		tableName = defaultSnapshotsTableName
	}
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *SnapshotDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            snapshotKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Payload, nil
}

// Put upserts the payload, keeping the first created_at.
func (r *SnapshotDynamoRepository) Put(ctx context.Context, key string, payload []byte) error {
	now := timestamp(r.now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              snapshotKey(key),
		UpdateExpression: aws.String("SET #payload = :payload, #updated_at = :now, #created_at = if_not_exists(#created_at, :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload": &types.AttributeValueMemberB{Value: payload},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#payload": "payload"},
			map[string]string{"#updated_at": "updated_at", "#created_at": "created_at"},
		),
	})
	return err
}

func (r *SnapshotDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       snapshotKey(key),
	})
	return err
}

func snapshotKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}
