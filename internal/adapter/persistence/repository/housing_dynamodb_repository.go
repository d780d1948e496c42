package repository

import (
	"context"
	"strconv"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHousingsTableName = "housings"

type housingItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	Title        string `dynamodbav:"title"`
	MonthlyPrice string `dynamodbav:"monthly_price"`
	Deposit      string `dynamodbav:"deposit"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// HousingDynamoRepository persists Housing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type HousingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHousingRepository = (*HousingDynamoRepository)(nil)

func NewHousingDynamoRepository(ddb *dynamodb.Client) *HousingDynamoRepository {
	return &HousingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOUSINGS_TABLE", defaultHousingsTableName),
	}
}

func (r *HousingDynamoRepository) Create(ctx context.Context, h entities.Housing) (entities.Housing, error) {
	it := toHousingItem(h)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Housing{}, err
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
		return entities.Housing{}, err
	}
	return h, nil
}

func (r *HousingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Housing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Housing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Housing{}, nil
	}

	var it housingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Housing{}, err
	}
	return fromHousingItem(it), nil
}

func (r *HousingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toHousingItem(h entities.Housing) housingItem {
	return housingItem{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Title:        h.Title,
		MonthlyPrice: floatToString(h.MonthlyPrice),
		Deposit:      floatToString(h.Deposit),
		CreatedAt:    h.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromHousingItem(it housingItem) entities.Housing {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	monthlyPrice, _ := strconv.ParseFloat(it.MonthlyPrice, 64)
	deposit, _ := strconv.ParseFloat(it.Deposit, 64)
	return entities.Housing{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Title:        it.Title,
		MonthlyPrice: monthlyPrice,
		Deposit:      deposit,
		CreatedAt:    createdAt,
	}
}
