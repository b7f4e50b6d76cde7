package repository

import (
	"context"
	"errors"
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserIDIndex      = "user_id-index"
	quotesClientIDIndex    = "client_id-index"
)

type quoteItemItem struct {
	RecipeID  string `dynamodbav:"recipe_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

// The quote total is intentionally absent from the item: it is always
// recomputed from the item list, never stored.
type quoteItem struct {
	ID         string          `dynamodbav:"id"`
	UserID     string          `dynamodbav:"user_id"`
	ClientID   string          `dynamodbav:"client_id"`
	Items      []quoteItemItem `dynamodbav:"items"`
	Status     string          `dynamodbav:"status"`
	ValidUntil string          `dynamodbav:"valid_until"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: client_id-index (PK: client_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesUserIDIndex, "user_id = :v", userID)
}

func (r *QuoteDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesClientIDIndex, "client_id = :v", clientID)
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

// Save replaces the whole item. Quote values are immutable in the domain,
// so every mutation arrives here as a complete new copy.
func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteItemItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteItemItem{
			RecipeID:  it.RecipeID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
		})
	}
	return quoteItem{
		ID:         q.ID,
		UserID:     q.UserID,
		ClientID:   q.ClientID,
		Items:      items,
		Status:     string(q.Status),
		ValidUntil: q.ValidUntil.UTC().Format(time.RFC3339Nano),
		CreatedAt:  q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, qi := range it.Items {
		unitPrice, _ := money.NewFromString(qi.UnitPrice)
		items = append(items, entities.QuoteItem{
			RecipeID:  qi.RecipeID,
			Quantity:  qi.Quantity,
			UnitPrice: unitPrice,
		})
	}

	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Quote{
		ID:         it.ID,
		UserID:     it.UserID,
		ClientID:   it.ClientID,
		Items:      items,
		Status:     entities.QuoteStatus(it.Status),
		ValidUntil: validUntil,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
