package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReservationsTableName = "reservations"
	reservationsTenantIDIndex    = "tenant_id-index"
	reservationsHousingIDIndex   = "housing_id-index"
)

type reservationItem struct {
	ID             string `dynamodbav:"id"`
	TenantID       string `dynamodbav:"tenant_id"`
	HousingID      string `dynamodbav:"housing_id"`
	StartDate      string `dynamodbav:"start_date"`
	EndDate        string `dynamodbav:"end_date"`
	BaseRent       string `dynamodbav:"base_rent"`
	Deposit        string `dynamodbav:"deposit"`
	CommissionRate string `dynamodbav:"commission_rate"`
	Commission     string `dynamodbav:"commission"`
	TotalAmount    string `dynamodbav:"total_amount"`
	Status         string `dynamodbav:"status"`
	Mismatch       bool   `dynamodbav:"mismatch"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ReservationDynamoRepository persists Reservation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//   - GSI: housing_id-index (PK: housing_id)
//
// Monetary amounts are stored as decimal strings so the snapshot round-trips
// exactly; they are never recomputed at this layer.

type ReservationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb *dynamodb.Client) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESERVATIONS_TABLE", defaultReservationsTableName),
	}
}

func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	it := toReservationItem(res)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Reservation{}, err
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
		return entities.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

// UpdateStatus writes the status and mismatch flag in a single update so a
// confirmation can never land without its reconciliation verdict.
func (r *ReservationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus, mismatch bool) (entities.Reservation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #mismatch = :mismatch, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":mismatch":   &types.AttributeValueMemberBOOL{Value: mismatch},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#mismatch":   "mismatch",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reservation{}, nil
		}
		return entities.Reservation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reservation{}, nil
	}
	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

func (r *ReservationDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Reservation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Reservation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reservationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReservationItem(it))
	}
	return items, nil
}

// DeleteByHousingID removes every reservation tied to a housing. Used by the
// listing-removal cascade; best effort per item.
func (r *ReservationDynamoRepository) DeleteByHousingID(ctx context.Context, housingID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsHousingIDIndex),
		KeyConditionExpression: aws.String("housing_id = :hid"),
		ProjectionExpression:   aws.String("id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hid": &types.AttributeValueMemberS{Value: housingID},
		},
	})
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it reservationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toReservationItem(res entities.Reservation) reservationItem {
	return reservationItem{
		ID:             res.ID,
		TenantID:       res.TenantID,
		HousingID:      res.HousingID,
		StartDate:      res.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:        res.EndDate.UTC().Format(time.RFC3339Nano),
		BaseRent:       floatToString(res.BaseRent),
		Deposit:        floatToString(res.Deposit),
		CommissionRate: floatToString(res.CommissionRate),
		Commission:     floatToString(res.Commission),
		TotalAmount:    floatToString(res.TotalAmount),
		Status:         string(res.Status),
		Mismatch:       res.Mismatch,
		CreatedAt:      res.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      res.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReservationItem(it reservationItem) entities.Reservation {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	baseRent, _ := strconv.ParseFloat(it.BaseRent, 64)
	deposit, _ := strconv.ParseFloat(it.Deposit, 64)
	commissionRate, _ := strconv.ParseFloat(it.CommissionRate, 64)
	commission, _ := strconv.ParseFloat(it.Commission, 64)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.Reservation{
		ID:             it.ID,
		TenantID:       it.TenantID,
		HousingID:      it.HousingID,
		StartDate:      startDate,
		EndDate:        endDate,
		BaseRent:       baseRent,
		Deposit:        deposit,
		CommissionRate: commissionRate,
		Commission:     commission,
		TotalAmount:    totalAmount,
		Status:         entities.ReservationStatus(it.Status),
		Mismatch:       it.Mismatch,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
