// Package dynamodb stores directory rows in an AWS DynamoDB table keyed by id.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
)

// API is the subset of the DynamoDB client the storage uses
type API interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Config holds the DynamoDB configuration
type Config struct {
	Region    string
	TableName string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local
	Endpoint string
}

// Storage is a DynamoDB-backed implementation of the storage interface
type Storage struct {
	client    API
	tableName string
}

// New creates a DynamoDB storage using the default AWS credential chain
func New(ctx context.Context, cfg Config) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(client, cfg.TableName), nil
}

// NewWithClient creates a DynamoDB storage with an existing client (for testing)
func NewWithClient(client API, tableName string) *Storage {
	return &Storage{
		client:    client,
		tableName: tableName,
	}
}

// Ensure Storage implements the interface
var _ storage.ServerStore = (*Storage)(nil)

// item is the DynamoDB representation of a server row
type item struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	IP            string `dynamodbav:"ip"`
	Status        string `dynamodbav:"status"`
	PlayersOnline int    `dynamodbav:"players_online"`
	Plan          string `dynamodbav:"plan"`
	Type          string `dynamodbav:"type"`
	Version       string `dynamodbav:"version,omitempty"`
	CreatedAt     int64  `dynamodbav:"created_at"`
}

func itemFromModel(s *model.Server) item {
	it := item{
		ID:            string(s.ID),
		Name:          s.Name,
		IP:            s.IP,
		Status:        s.Status,
		PlayersOnline: s.PlayersOnline,
		Plan:          string(s.Plan),
		Type:          string(s.Type),
		Version:       s.Version,
	}
	if !s.CreatedAt.IsZero() {
		it.CreatedAt = s.CreatedAt.UnixNano()
	}
	return it
}

func (it item) toModel() *model.Server {
	s := &model.Server{
		ID:            model.ServerID(it.ID),
		Name:          it.Name,
		IP:            it.IP,
		Status:        it.Status,
		PlayersOnline: it.PlayersOnline,
		Plan:          model.Plan(it.Plan),
		Type:          model.Category(it.Type),
		Version:       it.Version,
	}
	if it.CreatedAt != 0 {
		s.CreatedAt = time.Unix(0, it.CreatedAt).UTC()
	}
	return s
}

func (s *Storage) ListServers(ctx context.Context) ([]*model.Server, error) {
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})

	var items []item
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan servers: %w", err)
		}
		var pageItems []item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal servers: %w", err)
		}
		items = append(items, pageItems...)
	}

	// Scan order is arbitrary
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})

	servers := make([]*model.Server, 0, len(items))
	for _, it := range items {
		servers = append(servers, it.toModel())
	}
	return servers, nil
}

func (s *Storage) GetServer(ctx context.Context, id model.ServerID) (*model.Server, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: string(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	if result.Item == nil {
		return nil, model.ErrServerNotFound
	}

	var it item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server: %w", err)
	}
	return it.toModel(), nil
}

func (s *Storage) InsertServer(ctx context.Context, server *model.Server) error {
	row := *server
	row.ID = model.ServerID(uuid.NewString())

	av, err := attributevalue.MarshalMap(itemFromModel(&row))
	if err != nil {
		return fmt.Errorf("failed to marshal server: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("server id collision: %w", err)
		}
		return fmt.Errorf("failed to put server: %w", err)
	}

	server.ID = row.ID
	return nil
}
