package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const planningSchemaJSON = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": ["integer", "string"], "minLength": 1},
		"task_id": {"type": ["integer", "string", "null"]},
		"planned_date": {"type": ["string", "null"]},
		"start_hour": {"type": ["string", "null"]},
		"end_hour": {"type": ["string", "null"]},
		"priority": {"type": ["integer", "null"]},
		"done": {"type": ["boolean", "null"]},
		"task": {"type": ["object", "null"]}
	}
}`

const planningListSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "task_id", "planned_date"],
		"properties": {
			"id": {"type": ["integer", "string"]},
			"task_id": {"type": ["integer", "string"]},
			"planned_date": {"type": "string"}
		}
	}
}`

var (
	planningSchema     = jsonschema.MustCompileString("planning.json", planningSchemaJSON)
	planningListSchema = jsonschema.MustCompileString("planning_list.json", planningListSchemaJSON)
)

// validateBody checks a response body against schema.
func validateBody(schema *jsonschema.Schema, body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, schemaMessage(err))
	}
	return nil
}

// schemaMessage flattens a validation error into its leaf causes.
func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
