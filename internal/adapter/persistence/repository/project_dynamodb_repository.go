package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAIProjectsTableName       = "ai_projects"
	defaultCreativeProjectsTableName = "creative_projects"
)

type projectItem struct {
	ID         string `dynamodbav:"id"`
	TrackingID string `dynamodbav:"tracking_id"`

	ServiceID   string `dynamodbav:"service_id"`
	ServiceName string `dynamodbav:"service_name"`
	Category    string `dynamodbav:"category"`
	Plan        string `dynamodbav:"plan,omitempty"`

	ProjectName       string `dynamodbav:"project_name"`
	Timeline          string `dynamodbav:"timeline"`
	Description       string `dynamodbav:"description,omitempty"`
	EventType         string `dynamodbav:"event_type,omitempty"`
	ExpectedAttendees int    `dynamodbav:"expected_attendees,omitempty"`

	ContactName string `dynamodbav:"contact_name"`
	Email       string `dynamodbav:"contact_email"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Company     string `dynamodbav:"company,omitempty"`
	Website     string `dynamodbav:"website,omitempty"`

	Budget              int     `dynamodbav:"budget"`
	QualScore           int     `dynamodbav:"qualification_score"`
	QualEstimatedValue  float64 `dynamodbav:"qualification_estimated_value"`
	QualPriority        string  `dynamodbav:"qualification_priority"`
	QualificationSource string  `dynamodbav:"qualification_source"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProjectDynamoRepository persists ProjectSubmission entities in DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//
// AI-category submissions land in ai_projects, everything else (creative and
// eventos) in creative_projects, mirroring the hosted schema the admin
// dashboard reads. List scans both tables and merges newest-first.

type ProjectDynamoRepository struct {
	ddb           *dynamodb.Client
	aiTable       string
	creativeTable string
}

var _ interfaces.ISubmissionRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:           ddb,
		aiTable:       getenvDefault("AI_PROJECTS_TABLE", defaultAIProjectsTableName),
		creativeTable: getenvDefault("CREATIVE_PROJECTS_TABLE", defaultCreativeProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) tableFor(category entities.ServiceCategory) string {
	if category == entities.CategoryAI {
		return r.aiTable
	}
	return r.creativeTable
}

func (r *ProjectDynamoRepository) Insert(ctx context.Context, s entities.ProjectSubmission) error {
	it := toProjectItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableFor(s.Category)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.ProjectSubmission, error) {
	var all []entities.ProjectSubmission
	for _, table := range []string{r.aiTable, r.creativeTable} {
		subs, err := r.scanTable(ctx, table)
		if err != nil {
			return nil, err
		}
		all = append(all, subs...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *ProjectDynamoRepository) scanTable(ctx context.Context, table string) ([]entities.ProjectSubmission, error) {
	var subs []entities.ProjectSubmission
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for _, item := range out.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				log.Printf("[repository][projects] skipping malformed item table=%s err=%v", table, err)
				continue
			}
			subs = append(subs, fromProjectItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return subs, nil
}

// UpdateStatus patches the status attribute. The submission's table is not
// known from the id alone, so the update is attempted on both tables; a
// conditional failure on one table is expected and ignored as long as the
// other succeeds.
func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) error {
	var lastErr error
	for _, table := range []string{r.aiTable, r.creativeTable} {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
		})
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("update status id=%s: %w", id, lastErr)
}

func toProjectItem(s entities.ProjectSubmission) projectItem {
	return projectItem{
		ID:                  s.ID,
		TrackingID:          s.TrackingID,
		ServiceID:           s.ServiceID,
		ServiceName:         s.ServiceName,
		Category:            string(s.Category),
		Plan:                s.Plan,
		ProjectName:         s.ProjectName,
		Timeline:            s.Timeline,
		Description:         s.Description,
		EventType:           s.EventType,
		ExpectedAttendees:   s.ExpectedAttendees,
		ContactName:         s.ContactName,
		Email:               s.Email,
		Phone:               s.Phone,
		Company:             s.Company,
		Website:             s.Website,
		Budget:              s.Budget,
		QualScore:           s.Qualification.Score,
		QualEstimatedValue:  s.Qualification.EstimatedValue,
		QualPriority:        s.Qualification.Priority,
		QualificationSource: string(s.Qualification.Source),
		Status:              string(s.Status),
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.ProjectSubmission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ProjectSubmission{
		ID:                it.ID,
		TrackingID:        it.TrackingID,
		ServiceID:         it.ServiceID,
		ServiceName:       it.ServiceName,
		Category:          entities.ServiceCategory(it.Category),
		Plan:              it.Plan,
		ProjectName:       it.ProjectName,
		Timeline:          it.Timeline,
		Description:       it.Description,
		EventType:         it.EventType,
		ExpectedAttendees: it.ExpectedAttendees,
		ContactName:       it.ContactName,
		Email:             it.Email,
		Phone:             it.Phone,
		Company:           it.Company,
		Website:           it.Website,
		Budget:            it.Budget,
		Qualification: entities.Qualification{
			Score:          it.QualScore,
			EstimatedValue: it.QualEstimatedValue,
			Priority:       it.QualPriority,
			Source:         entities.QualificationSource(it.QualificationSource),
		},
		Status:    entities.ProjectStatus(it.Status),
		CreatedAt: createdAt,
	}
}
