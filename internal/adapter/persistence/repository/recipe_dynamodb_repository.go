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
	"github.com/shopspring/decimal"
)

const (
	defaultRecipesTableName = "recipes"
	recipesUserIDIndex      = "user_id-index"
)

type ingredientLineItem struct {
	Name      string `dynamodbav:"name"`
	Quantity  string `dynamodbav:"quantity"`
	Unit      string `dynamodbav:"unit"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type recipeItem struct {
	ID            string               `dynamodbav:"id"`
	UserID        string               `dynamodbav:"user_id"`
	Name          string               `dynamodbav:"name"`
	Lines         []ingredientLineItem `dynamodbav:"lines"`
	LaborHours    string               `dynamodbav:"labor_hours"`
	LaborRate     string               `dynamodbav:"labor_rate"`
	FixedCosts    string               `dynamodbav:"fixed_costs"`
	MarginPercent string               `dynamodbav:"margin_percent"`
	CreatedAt     string               `dynamodbav:"created_at"`
	UpdatedAt     string               `dynamodbav:"updated_at"`
}

// RecipeDynamoRepository persists Recipe entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Only breakdown inputs are stored; derived costs are recomputed on read.

type RecipeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecipeRepository = (*RecipeDynamoRepository)(nil)

func NewRecipeDynamoRepository(ddb *dynamodb.Client) *RecipeDynamoRepository {
	return &RecipeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECIPES_TABLE", defaultRecipesTableName),
	}
}

func (r *RecipeDynamoRepository) Create(ctx context.Context, rec entities.Recipe) (entities.Recipe, error) {
	av, err := attributevalue.MarshalMap(toRecipeItem(rec))
	if err != nil {
		return entities.Recipe{}, err
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
		return entities.Recipe{}, err
	}
	return rec, nil
}

func (r *RecipeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Recipe, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Recipe{}, err
	}
	if len(out.Item) == 0 {
		return entities.Recipe{}, nil
	}

	var it recipeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Recipe{}, err
	}
	return fromRecipeItem(it), nil
}

func (r *RecipeDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Recipe, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recipesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	recipes := make([]entities.Recipe, 0, len(out.Items))
	for _, raw := range out.Items {
		var it recipeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		recipes = append(recipes, fromRecipeItem(it))
	}
	return recipes, nil
}

// Update replaces the whole item. The breakdown is a nested document, so a
// full put is simpler and no less safe than a field-by-field expression.
func (r *RecipeDynamoRepository) Update(ctx context.Context, rec entities.Recipe) (entities.Recipe, error) {
	av, err := attributevalue.MarshalMap(toRecipeItem(rec))
	if err != nil {
		return entities.Recipe{}, err
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
			return entities.Recipe{}, nil
		}
		return entities.Recipe{}, err
	}
	return rec, nil
}

func (r *RecipeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRecipeItem(rec entities.Recipe) recipeItem {
	lines := make([]ingredientLineItem, 0, len(rec.Breakdown.Lines))
	for _, line := range rec.Breakdown.Lines {
		lines = append(lines, ingredientLineItem{
			Name:      line.Name,
			Quantity:  line.Quantity.String(),
			Unit:      string(line.Unit),
			UnitPrice: line.UnitPrice.String(),
		})
	}
	return recipeItem{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Name:          rec.Name,
		Lines:         lines,
		LaborHours:    rec.Breakdown.LaborHours.String(),
		LaborRate:     rec.Breakdown.LaborRate.String(),
		FixedCosts:    rec.Breakdown.FixedCosts.String(),
		MarginPercent: rec.Breakdown.MarginPercent.String(),
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRecipeItem(it recipeItem) entities.Recipe {
	lines := make([]entities.IngredientLine, 0, len(it.Lines))
	for _, line := range it.Lines {
		quantity, _ := decimal.NewFromString(line.Quantity)
		unitPrice, _ := money.NewFromString(line.UnitPrice)
		lines = append(lines, entities.IngredientLine{
			Name:      line.Name,
			Quantity:  quantity,
			Unit:      entities.MeasurementUnit(line.Unit),
			UnitPrice: unitPrice,
		})
	}

	laborHours, _ := decimal.NewFromString(it.LaborHours)
	laborRate, _ := money.NewFromString(it.LaborRate)
	fixedCosts, _ := money.NewFromString(it.FixedCosts)
	marginPercent, _ := decimal.NewFromString(it.MarginPercent)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Recipe{
		ID:     it.ID,
		UserID: it.UserID,
		Name:   it.Name,
		Breakdown: entities.RecipeCostBreakdown{
			Lines:         lines,
			LaborHours:    laborHours,
			LaborRate:     laborRate,
			FixedCosts:    fixedCosts,
			MarginPercent: marginPercent,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
