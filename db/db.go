package db

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/pkg/errors"
)

// Cache stores converted curves in a DynamoDB table keyed by "PK".
type Cache struct {
	client *dynamodb.DynamoDB
	table  string
}

func NewCache(endpoint string, table string) (*Cache, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return &Cache{client: dynamodb.New(sess), table: table}, nil
}

// Get returns false when nothing is stored under key.
func (c *Cache) Get(key string) (*model.Pitch, bool, error) {
	out, err := c.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key:       keyAttr(key),
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}
	p, err := pitchFromItem(out.Item)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (c *Cache) Put(key string, p *model.Pitch) error {
	item, err := itemFromPitch(key, p)
	if err != nil {
		return err
	}
	_, err = c.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func keyAttr(key string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(key)},
	}
}

// A nil pitch is stored as an item without a "Pitch" attribute.
func itemFromPitch(key string, p *model.Pitch) (map[string]*dynamodb.AttributeValue, error) {
	item := keyAttr(key)
	if p == nil {
		return item, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode pitch")
	}
	item["Pitch"] = &dynamodb.AttributeValue{S: aws.String(string(data))}
	return item, nil
}

func pitchFromItem(item map[string]*dynamodb.AttributeValue) (*model.Pitch, error) {
	attr, ok := item["Pitch"]
	if !ok || attr.S == nil {
		return nil, nil
	}
	var p model.Pitch
	if err := json.Unmarshal([]byte(*attr.S), &p); err != nil {
		return nil, errors.Wrap(err, "could not decode cached pitch")
	}
	return &p, nil
}
