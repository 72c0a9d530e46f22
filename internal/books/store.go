// Package books looks up catalog records in DynamoDB.
//
// The table is keyed by BookId, so a title lookup is a full scan with an
// equality filter on Title. That is linear in the table size.
package books

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/booknook/catalog-lambdas/internal/domain"
)

// TitleAttribute is the record attribute matched by FindByTitle.
const TitleAttribute = "Title"

// ErrNotFound is returned when no record matches.
var ErrNotFound = errors.New("book not found")

// Finder is what the lookup handler needs from the record store.
type Finder interface {
	FindByTitle(ctx context.Context, title string) (domain.Book, error)
}

// Store scans a single DynamoDB table.
type Store struct {
	client dynamodb.ScanAPIClient
	table  string
}

// NewStore wraps an existing scan client.
func NewStore(client dynamodb.ScanAPIClient, table string) *Store {
	return &Store{client: client, table: table}
}

// NewDynamoStore builds a Store on a DynamoDB client for cfg.
func NewDynamoStore(cfg aws.Config, table string) *Store {
	return NewStore(dynamodb.NewFromConfig(cfg), table)
}

// FindByTitle returns the first record, in scan order, whose Title equals
// title exactly. Pages are read until one yields a match. Numbers come back
// as json.Number.
func (s *Store) FindByTitle(ctx context.Context, title string) (domain.Book, error) {
	filter := expression.Name(TitleAttribute).Equal(expression.Value(title))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scan filter")
	}

	p := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:                 aws.String(s.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan table %s", s.table)
		}

		if len(page.Items) == 0 {
			continue
		}

		var book domain.Book
		err = attributevalue.UnmarshalMapWithOptions(page.Items[0], &book, func(o *attributevalue.DecoderOptions) {
			o.UseNumber = true
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal book")
		}
		return jsonNumbers(book).(domain.Book), nil
	}

	return nil, ErrNotFound
}

// jsonNumbers replaces attributevalue.Number with json.Number so numeric
// attributes encode as JSON numbers with every digit kept.
func jsonNumbers(v any) any {
	switch t := v.(type) {
	case attributevalue.Number:
		return json.Number(t)
	case []attributevalue.Number:
		out := make([]json.Number, len(t))
		for i, n := range t {
			out[i] = json.Number(n)
		}
		return out
	case domain.Book:
		for k, e := range t {
			t[k] = jsonNumbers(e)
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = jsonNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = jsonNumbers(e)
		}
		return t
	default:
		return v
	}
}
