package preprocess

// Column names of the machine-failure dataset. The raw file must carry
// the left-hand set; the pipeline derives the rest.
const (
	ColUDI            = "UDI"
	ColProductID      = "Product ID"
	ColType           = "Type"
	ColAirTempK       = "Air temperature [K]"
	ColProcessTempK   = "Process temperature [K]"
	ColAirTempC       = "Air temperature [c]"
	ColProcessTempC   = "Process temperature [c]"
	ColRotationalRPM  = "Rotational speed [rpm]"
	ColTorque         = "Torque [Nm]"
	ColToolWear       = "Tool wear [min]"
	ColTarget         = "Target"
	ColMachineFailure = "Machine failure"
	ColFailureType    = "Failure Type"
	ColTypeOfFailure  = "type_of_failure"
)

// ScaledColumns lists the continuous features subject to min-max scaling.
// Type stays ordinal and Machine failure stays binary; neither is scaled.
func ScaledColumns() []string {
	return []string{
		ColRotationalRPM,
		ColTorque,
		ColToolWear,
		ColAirTempC,
		ColProcessTempC,
	}
}

// TypeCategories is the fixed rank order of the machine quality variant
func TypeCategories() []string {
	return []string{"L", "M", "H"}
}
