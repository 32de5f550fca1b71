package levels

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/levels.schema.json
var schemaJSON []byte

var documentSchema *jsonschema.Schema

func init() {
	js, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)
	if err := compiler.AddResource("levels.schema.json", js); err != nil {
		panic(err)
	}

	documentSchema, err = compiler.Compile("levels.schema.json")
	if err != nil {
		panic(err)
	}
}

// decodeDocument validates a raw levels document and decodes it into specs
// keyed by uppercase level name.
func decodeDocument(doc map[string]any) (map[string]Spec, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	if err := documentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	specs := make(map[string]Spec, len(doc))
	for name, raw := range doc {
		key := strings.ToUpper(name)
		if _, dup := specs[key]; dup {
			return nil, fmt.Errorf("%w: level %s is defined more than once", ErrInvalidDocument, key)
		}

		var spec Spec
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &spec,
			TagName:     "mapstructure",
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("%w: level %s: %v", ErrInvalidDocument, key, err)
		}
		specs[key] = spec
	}

	return specs, nil
}
