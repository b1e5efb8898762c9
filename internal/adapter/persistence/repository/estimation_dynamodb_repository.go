package repository

import (
	"context"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	lineItemIndexName = "budget_line_item_id-index"

	// DynamoDB caps a transaction at 100 actions.
	maxTransactItems = 100
)

type remarkItem struct {
	ID        string `dynamodbav:"id"`
	AuthorID  string `dynamodbav:"author_id"`
	Role      string `dynamodbav:"role"`
	Action    string `dynamodbav:"action"`
	Text      string `dynamodbav:"text"`
	CreatedAt string `dynamodbav:"created_at"`
}

type estimationItem struct {
	ID                 string       `dynamodbav:"id"`
	BudgetLineItemID   string       `dynamodbav:"budget_line_item_id"`
	ActualPreviousYear string       `dynamodbav:"actual_previous_year"`
	BudgetCurrentYear  string       `dynamodbav:"budget_current_year"`
	RevisedEstimate    string       `dynamodbav:"revised_estimate"`
	ProposedEstimate   string       `dynamodbav:"proposed_estimate"`
	Status             string       `dynamodbav:"status"`
	CurrentLevel       string       `dynamodbav:"current_level"`
	Remarks            []remarkItem `dynamodbav:"remarks"`
	CreatedBy          string       `dynamodbav:"created_by"`
	CreatedAt          string       `dynamodbav:"created_at"`
	UpdatedAt          string       `dynamodbav:"updated_at"`
	Version            int64        `dynamodbav:"version"`
}

// EstimationDynamoRepository persists estimation records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI budget_line_item_id-index, PK: budget_line_item_id (string)
//
// Amounts are stored as decimal strings so no precision is lost.

type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

// Create puts the record and bumps every sibling's version in one transaction.
// The Put is always the first action, so its cancellation reason tells an
// existing id apart from a stale sibling.
func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.EstimationRecord, siblings []entities.EstimationRecord) (entities.EstimationRecord, error) {
	if len(siblings)+1 > maxTransactItems {
		return entities.EstimationRecord{}, errors.Newf("line item %s has %d records, over the %d item transaction limit", e.BudgetLineItemID, len(siblings), maxTransactItems)
	}
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.EstimationRecord{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(siblings)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, sib := range siblings {
		items = append(items, types.TransactWriteItem{Update: bumpVersion(r.tableName, sib)})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if failedAt(tce, 0) {
				return entities.EstimationRecord{}, errors.Wrapf(interfaces.ErrEstimationExists, "id %s", e.ID)
			}
			if hasConditionalFailure(tce) {
				return entities.EstimationRecord{}, errors.Wrapf(interfaces.ErrVersionConflict, "line item %s changed since it was read", e.BudgetLineItemID)
			}
		}
		return entities.EstimationRecord{}, err
	}
	return e, nil
}

func bumpVersion(tableName string, rec entities.EstimationRecord) *types.Update {
	return &types.Update{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #version = :next"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(rec.Version)},
			":next":     &types.AttributeValueMemberN{Value: formatInt(rec.Version + 1)},
		},
	}
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimationRecord{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimationRecord{}, err
	}
	return fromEstimationItem(it)
}

// ListByBudgetLineItem reads the batch through the line item GSI. GSI reads are
// eventually consistent; ReplaceBatch's version check catches stale copies.
func (r *EstimationDynamoRepository) ListByBudgetLineItem(ctx context.Context, lineItemID string) ([]entities.EstimationRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemIndexName),
		KeyConditionExpression: aws.String("#li = :li"),
		ExpressionAttributeNames: map[string]string{
			"#li": "budget_line_item_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":li": &types.AttributeValueMemberS{Value: lineItemID},
		},
	})

	var out []entities.EstimationRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := unmarshalRecords(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	entities.SortRecords(out)
	return out, nil
}

func (r *EstimationDynamoRepository) List(ctx context.Context, filter entities.RecordFilter) ([]entities.EstimationRecord, error) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if expr, names, values := buildScanFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	p := dynamodb.NewScanPaginator(r.ddb, input)
	out := []entities.EstimationRecord{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := unmarshalRecords(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	entities.SortRecords(out)
	return out, nil
}

// ReplaceBatch writes every record in one transaction, each guarded by the
// version it was read at.
func (r *EstimationDynamoRepository) ReplaceBatch(ctx context.Context, batch []entities.EstimationRecord) ([]entities.EstimationRecord, error) {
	if len(batch) == 0 {
		return []entities.EstimationRecord{}, nil
	}
	if len(batch) > maxTransactItems {
		return nil, errors.Newf("batch of %d records exceeds the %d item transaction limit", len(batch), maxTransactItems)
	}
	if dup := lo.FindDuplicatesBy(batch, func(rec entities.EstimationRecord) string { return rec.ID }); len(dup) > 0 {
		return nil, errors.Newf("estimation %s appears twice in batch", dup[0].ID)
	}

	now := time.Now().UTC()
	next := make([]entities.EstimationRecord, 0, len(batch))
	items := make([]types.TransactWriteItem, 0, len(batch))
	for _, rec := range batch {
		expected := rec.Version
		n := rec.Clone()
		n.Version = expected + 1
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = now
		}

		av, err := attributevalue.MarshalMap(toEstimationItem(n))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#version": "version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: formatInt(expected)},
				},
			},
		})
		next = append(next, n)
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalFailure(tce) {
			return nil, errors.Wrap(interfaces.ErrVersionConflict, "transaction cancelled")
		}
		return nil, err
	}
	return next, nil
}

func failedAt(tce *types.TransactionCanceledException, i int) bool {
	if i >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

func hasConditionalFailure(tce *types.TransactionCanceledException) bool {
	return lo.ContainsBy(tce.CancellationReasons, func(reason types.CancellationReason) bool {
		return aws.ToString(reason.Code) == "ConditionalCheckFailed"
	})
}

// buildScanFilter turns the non-empty filter fields into a filter expression.
func buildScanFilter(f entities.RecordFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	add := func(placeholder, attr, value string) {
		if value == "" {
			return
		}
		names["#"+placeholder] = attr
		values[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
		clauses = append(clauses, "#"+placeholder+" = :"+placeholder)
	}
	add("level", "current_level", string(f.Level))
	add("status", "status", string(f.Status))
	add("li", "budget_line_item_id", f.BudgetLineItemID)

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return joinAnd(clauses), names, values
}

func unmarshalRecords(items []map[string]types.AttributeValue) ([]entities.EstimationRecord, error) {
	var raw []estimationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	out := make([]entities.EstimationRecord, 0, len(raw))
	for _, it := range raw {
		rec, err := fromEstimationItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toEstimationItem(e entities.EstimationRecord) estimationItem {
	return estimationItem{
		ID:                 e.ID,
		BudgetLineItemID:   e.BudgetLineItemID,
		ActualPreviousYear: e.ActualPreviousYear.String(),
		BudgetCurrentYear:  e.BudgetCurrentYear.String(),
		RevisedEstimate:    e.RevisedEstimate.String(),
		ProposedEstimate:   e.ProposedEstimate.String(),
		Status:             string(e.Status),
		CurrentLevel:       string(e.CurrentLevel),
		Remarks: lo.Map(e.Remarks, func(rm entities.Remark, _ int) remarkItem {
			return remarkItem{
				ID:        rm.ID,
				AuthorID:  rm.AuthorID,
				Role:      string(rm.Role),
				Action:    string(rm.Action),
				Text:      rm.Text,
				CreatedAt: formatTime(rm.CreatedAt),
			}
		}),
		CreatedBy: e.CreatedBy,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
		Version:   e.Version,
	}
}

func fromEstimationItem(it estimationItem) (entities.EstimationRecord, error) {
	fields, err := parseFields(it.ActualPreviousYear, it.BudgetCurrentYear, it.RevisedEstimate, it.ProposedEstimate)
	if err != nil {
		return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s", it.ID)
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s created_at", it.ID)
	}
	updatedAt, err := parseTime(it.UpdatedAt)
	if err != nil {
		return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s updated_at", it.ID)
	}

	remarks := make([]entities.Remark, 0, len(it.Remarks))
	for _, rm := range it.Remarks {
		at, err := parseTime(rm.CreatedAt)
		if err != nil {
			return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s remark %s", it.ID, rm.ID)
		}
		remarks = append(remarks, entities.Remark{
			ID:        rm.ID,
			AuthorID:  rm.AuthorID,
			Role:      entities.Role(rm.Role),
			Action:    entities.Action(rm.Action),
			Text:      rm.Text,
			CreatedAt: at,
		})
	}

	return entities.EstimationRecord{
		ID:               it.ID,
		BudgetLineItemID: it.BudgetLineItemID,
		EstimateFields:   fields,
		Status:           entities.Status(it.Status),
		CurrentLevel:     entities.Role(it.CurrentLevel),
		Remarks:          remarks,
		CreatedBy:        it.CreatedBy,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		Version:          it.Version,
	}, nil
}
