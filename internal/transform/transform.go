// Package transform describes the preprocessing applied to a dataset before
// model fitting. The toolkit only needs to recognize which transformer
// family each step belongs to; it never executes the transformations.
package transform

import (
	"fmt"
	"sort"
)

// Family identifies a supported transformer family.
type Family string

const (
	// FamilyColumnTransformer covers scikit-learn style column transformers.
	FamilyColumnTransformer Family = "column-transformer"
	// FamilyCategoryEncoder covers category-encoders style encoders.
	FamilyCategoryEncoder Family = "category-encoder"
)

// Transformer is a single preprocessing step.
type Transformer interface {
	Family() Family
}

// ColumnTransform applies a named transformation to a set of columns,
// scikit-learn ColumnTransformer style.
type ColumnTransform struct {
	Name    string
	Columns []string
}

func (ColumnTransform) Family() Family { return FamilyColumnTransformer }

// EncodingMethod names a categorical encoding scheme.
type EncodingMethod string

const (
	EncodingOrdinal EncodingMethod = "ordinal"
	EncodingOneHot  EncodingMethod = "onehot"
	EncodingBaseN   EncodingMethod = "basen"
	EncodingBinary  EncodingMethod = "binary"
	EncodingTarget  EncodingMethod = "target"
)

// CategoryEncoder encodes categorical columns with the given method,
// category-encoders style.
type CategoryEncoder struct {
	Method  EncodingMethod
	Columns []string
}

func (CategoryEncoder) Family() Family { return FamilyCategoryEncoder }

// Descriptor is a preprocessing description supplied by the caller: a single
// Transformer, an ordered []Transformer, or a map[string]Transformer.
type Descriptor any

// ToList normalizes a descriptor into an ordered list of transformers.
// Map descriptors are ordered by key so normalization is deterministic.
func ToList(d Descriptor) ([]Transformer, error) {
	switch v := d.(type) {
	case nil:
		return nil, nil
	case Transformer:
		return []Transformer{v}, nil
	case []Transformer:
		return v, nil
	case map[string]Transformer:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		list := make([]Transformer, 0, len(v))
		for _, k := range keys {
			list = append(list, v[k])
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported preprocessing descriptor type %T", d)
	}
}

// SupportedInverse reports which recognized families appear in the list.
func SupportedInverse(list []Transformer) (useCT, useCE bool) {
	for _, tr := range list {
		switch tr.Family() {
		case FamilyColumnTransformer:
			useCT = true
		case FamilyCategoryEncoder:
			useCE = true
		}
	}
	return useCT, useCE
}
