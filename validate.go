package formvalidate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

type config struct {
	logger *zap.Logger
}

// Option configures validation.
type Option func(*config)

// WithLogger sets the logger used to report rule-set problems such as
// unknown rule names. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Violation is one failed rule check.
type Violation struct {
	Field string
	Rule  string
	Err   validation.Error
}

// Error returns the rendered message.
func (v Violation) Error() string {
	return v.Err.Error()
}

// Result is the outcome of one validation attempt. Violations are ordered
// by field, then by rule, in declaration order.
type Result struct {
	Valid      bool
	Violations []Violation
}

// Messages returns the error messages in evaluation order. It is never nil.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		msgs[i] = v.Error()
	}
	return msgs
}

// Err returns nil if r is valid, [ErrNoData] if nothing was validated, and
// otherwise a [ValidationErrors] holding the first violation of each field.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if len(r.Violations) == 0 {
		return ErrNoData
	}
	errs := ValidationErrors{}
	for _, v := range r.Violations {
		if _, ok := errs[v.Field]; !ok {
			errs[v.Field] = v.Err
		}
	}
	return errs
}

// Report is the JSON form of a Result.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Report converts r to its JSON form.
func (r Result) Report() Report {
	return Report{Valid: r.Valid, Errors: r.Messages()}
}

// Check evaluates rules against data. The result is valid only when data
// is not empty and every rule passes; an empty record fails without any
// rule being run.
func Check(data Record, rules RuleSet, opts ...Option) Result {
	return evaluate(newConfig(opts), data, rules)
}

func evaluate(cfg config, data Record, rules RuleSet) Result {
	var res Result
	if len(data) == 0 {
		return res
	}

	for _, fr := range rules {
		if fr == nil {
			continue
		}
		value, ok := data[fr.Name]
		if !ok {
			value = ""
		}
		for _, r := range fr.Rules {
			if r.Name == labelKey {
				continue
			}
			k, ok := lookup(r.Name)
			if !ok {
				cfg.logger.Warn("ignoring unknown rule",
					zap.String("field", fr.Name),
					zap.String("rule", r.Name),
				)
				continue
			}
			if k.gated && !isTrue(r.Condition) {
				continue
			}

			err := k.Check(value, r.Condition)
			if err == nil {
				continue
			}
			var verr validation.Error
			if !errors.As(err, &verr) {
				cfg.logger.Warn("skipping rule",
					zap.String("field", fr.Name),
					zap.String("rule", r.Name),
					zap.Any("condition", r.Condition),
					zap.Error(err),
				)
				continue
			}
			res.Violations = append(res.Violations, Violation{
				Field: fr.Name,
				Rule:  r.Name,
				Err:   withLabel(verr, fr.label()),
			})
		}
	}

	res.Valid = len(res.Violations) == 0
	return res
}

// Validator holds a record and a rule set between calls to Validate.
// A Validator must not be used from several goroutines at once.
type Validator struct {
	cfg    config
	data   Record
	rules  RuleSet
	result Result
}

// New returns a Validator configured with data and rules. Either may be
// empty and set later.
func New(data Record, rules RuleSet, opts ...Option) *Validator {
	v := &Validator{cfg: newConfig(opts)}
	v.SetData(data)
	v.SetRules(rules)
	return v
}

// SetData replaces the record to validate. An empty record is stored as
// empty and reported with false.
func (v *Validator) SetData(data Record) bool {
	if len(data) == 0 {
		v.data = Record{}
		return false
	}
	v.data = maps.Clone(data)
	return true
}

// SetRules replaces the rule set. An empty rule set is stored as empty and
// reported with false.
func (v *Validator) SetRules(rules RuleSet) bool {
	if len(rules) == 0 {
		v.rules = RuleSet{}
		return false
	}
	v.rules = slices.Clone(rules)
	return true
}

// Validate runs the rule set against the record and reports whether every
// rule passed. Messages from any earlier call are discarded.
func (v *Validator) Validate() bool {
	v.result = evaluate(v.cfg, v.data, v.rules)
	return v.result.Valid
}

// Errors returns the messages of the last Validate call.
func (v *Validator) Errors() []string {
	return v.result.Messages()
}

// Result returns the outcome of the last Validate call.
func (v *Validator) Result() Result {
	return v.result
}

// Err is shorthand for v.Result().Err().
func (v *Validator) Err() error {
	return v.result.Err()
}

// UnmarshalAndValidate decodes a JSON object from b into a Record, then
// checks it against rules. Only decoding problems are returned as errors.
func UnmarshalAndValidate(b []byte, rules RuleSet, opts ...Option) (Result, error) {
	data, err := decodeRecord(json.NewDecoder(bytes.NewReader(b)))
	if err != nil {
		return Result{}, err
	}
	return Check(data, rules, opts...), nil
}

// DecodeAndValidate reads a JSON object from r using a streaming decoder,
// then checks it against rules. Use this instead of [UnmarshalAndValidate]
// when reading directly from an [io.Reader] such as a request body.
func DecodeAndValidate(r io.Reader, rules RuleSet, opts ...Option) (Result, error) {
	data, err := decodeRecord(json.NewDecoder(r))
	if err != nil {
		return Result{}, err
	}
	return Check(data, rules, opts...), nil
}

func decodeRecord(dec *json.Decoder) (Record, error) {
	dec.UseNumber()
	var data Record
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return data, nil
}
