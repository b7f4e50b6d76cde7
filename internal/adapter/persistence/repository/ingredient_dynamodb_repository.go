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
	defaultIngredientsTableName = "ingredients"
	ingredientsUserIDIndex      = "user_id-index"
)

// Money is persisted as an exact decimal string; float attributes would
// reintroduce the binary rounding the money package exists to prevent.
type ingredientItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Name      string `dynamodbav:"name"`
	Unit      string `dynamodbav:"unit"`
	UnitPrice string `dynamodbav:"unit_price"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// IngredientDynamoRepository persists Ingredient entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type IngredientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIngredientRepository = (*IngredientDynamoRepository)(nil)

func NewIngredientDynamoRepository(ddb *dynamodb.Client) *IngredientDynamoRepository {
	return &IngredientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INGREDIENTS_TABLE", defaultIngredientsTableName),
	}
}

func (r *IngredientDynamoRepository) Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error) {
	av, err := attributevalue.MarshalMap(toIngredientItem(i))
	if err != nil {
		return entities.Ingredient{}, err
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
		return entities.Ingredient{}, err
	}
	return i, nil
}

func (r *IngredientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ingredient, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ingredient{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ingredient{}, nil
	}

	var it ingredientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ingredient{}, err
	}
	return fromIngredientItem(it), nil
}

func (r *IngredientDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Ingredient, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ingredientsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Ingredient, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ingredientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromIngredientItem(it))
	}
	return items, nil
}

func (r *IngredientDynamoRepository) Update(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error) {
	now := i.UpdatedAt.UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: i.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #unit = :unit, #unit_price = :unit_price, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: i.Name},
			":unit":       &types.AttributeValueMemberS{Value: string(i.Unit)},
			":unit_price": &types.AttributeValueMemberS{Value: i.UnitPrice.String()},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#name":       "name",
			"#unit":       "unit",
			"#unit_price": "unit_price",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ingredient{}, nil
		}
		return entities.Ingredient{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ingredient{}, nil
	}

	var it ingredientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ingredient{}, err
	}
	return fromIngredientItem(it), nil
}

func (r *IngredientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toIngredientItem(i entities.Ingredient) ingredientItem {
	return ingredientItem{
		ID:        i.ID,
		UserID:    i.UserID,
		Name:      i.Name,
		Unit:      string(i.Unit),
		UnitPrice: i.UnitPrice.String(),
		CreatedAt: i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromIngredientItem(it ingredientItem) entities.Ingredient {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	unitPrice, _ := money.NewFromString(it.UnitPrice)
	return entities.Ingredient{
		ID:        it.ID,
		UserID:    it.UserID,
		Name:      it.Name,
		Unit:      entities.MeasurementUnit(it.Unit),
		UnitPrice: unitPrice,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
