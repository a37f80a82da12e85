package preprocess

import (
	"fmt"

	"predmaint/domain/frame"
	"predmaint/internal/errors"
)

// RenameAndDropColumns renames the raw binary target to its readable
// label and removes the two identifier columns. The stage is single-pass
// by design: running it twice fails because the Target column is gone.
func RenameAndDropColumns(f *frame.Frame) (*frame.Frame, error) {
	for _, col := range []string{ColTarget, ColUDI, ColProductID} {
		if !f.Has(col) {
			return nil, errors.SchemaError("rename_and_drop",
				fmt.Errorf("column %q not found", col))
		}
	}
	if err := f.Rename(ColTarget, ColMachineFailure); err != nil {
		return nil, errors.SchemaError("rename_and_drop", err)
	}
	if err := f.Drop(ColUDI, ColProductID); err != nil {
		return nil, errors.SchemaError("rename_and_drop", err)
	}
	return f, nil
}

// kelvin offset of zero Celsius
const kelvinOffset = 273.15

// ConvertTemperature derives Celsius columns from the Kelvin originals
// and drops the Kelvin columns. The conversion is an exact floating-point
// subtraction, no rounding.
func ConvertTemperature(f *frame.Frame) (*frame.Frame, error) {
	pairs := []struct{ kelvin, celsius string }{
		{ColAirTempK, ColAirTempC},
		{ColProcessTempK, ColProcessTempC},
	}
	for _, p := range pairs {
		kelvin, err := f.Numeric(p.kelvin)
		if err != nil {
			return nil, errors.SchemaError("convert_temperature", err)
		}
		celsius := make([]float64, len(kelvin))
		for i, k := range kelvin {
			celsius[i] = k - kelvinOffset
		}
		if err := f.PutNumeric(p.celsius, celsius); err != nil {
			return nil, errors.SchemaError("convert_temperature", err)
		}
	}
	if err := f.Drop(ColAirTempK, ColProcessTempK); err != nil {
		return nil, errors.SchemaError("convert_temperature", err)
	}
	return f, nil
}

// EncodeFeatures applies the ordinal encoding of Type (fixed order L<M<H)
// and the label encoding of Failure Type into type_of_failure. The raw
// Failure Type column stays in the frame for auditability. The fitted
// label encoder is returned for reverse lookups downstream.
func EncodeFeatures(f *frame.Frame) (*frame.Frame, *LabelEncoder, error) {
	typeValues, err := f.Strings(ColType)
	if err != nil {
		return nil, nil, errors.SchemaError("encode_features", err)
	}
	ordinal := NewOrdinalEncoder(TypeCategories()...)
	ranks, err := ordinal.Transform(ColType, typeValues)
	if err != nil {
		return nil, nil, err
	}
	if err := f.PutNumeric(ColType, ranks); err != nil {
		return nil, nil, errors.SchemaError("encode_features", err)
	}

	failureValues, err := f.Strings(ColFailureType)
	if err != nil {
		return nil, nil, errors.SchemaError("encode_features", err)
	}
	labelEncoder := NewLabelEncoder()
	codes, err := labelEncoder.FitTransform(ColFailureType, failureValues)
	if err != nil {
		return nil, nil, err
	}
	if err := f.PutNumeric(ColTypeOfFailure, codes); err != nil {
		return nil, nil, errors.SchemaError("encode_features", err)
	}
	return f, labelEncoder, nil
}
