package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"moviehub/comment"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// createdAtLayout is fixed width so timestamps sort lexicographically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type CommentRepository struct {
	client *dynamodb.Client
	table  string
	now    func() time.Time
}

type commentItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Comment   string `dynamodbav:"comment"`
	CreatedAt string `dynamodbav:"created_at"`
}

func NewCommentRepository(client *dynamodb.Client, table string) *CommentRepository {
	return &CommentRepository{
		client: client,
		table:  table,
		now:    time.Now,
	}
}

func (r *CommentRepository) CreateComment(ctx context.Context, c comment.AdaptedComment) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	item := commentItem{
		ID:        c.ID,
		Title:     c.Title,
		Comment:   c.Comment.Comment,
		CreatedAt: r.now().UTC().Format(createdAtLayout),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dynamodb: marshal comment: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("dynamodb: put comment: %w", err)
	}

	return nil
}

// AllComments scans the whole table and orders the result by creation time.
func (r *CommentRepository) AllComments(ctx context.Context) ([]comment.AdaptedComment, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	var items []commentItem
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan comments: %w", err)
		}

		var page []commentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal comments: %w", err)
		}
		items = append(items, page...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})

	comments := make([]comment.AdaptedComment, len(items))
	for i, item := range items {
		comments[i] = comment.AdaptedComment{
			ID: item.ID,
			Comment: comment.Comment{
				Title:   item.Title,
				Comment: item.Comment,
			},
		}
	}

	return comments, nil
}
