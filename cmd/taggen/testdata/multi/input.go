package testdata

// ScoreTag brands a numeric score with the full comparison chain.
type ScoreTag struct {
	_ struct{} `implement:"equal,strict_equal,order,strict_order"`
}

// AliasTag brands a display alias with out-of-band capabilities only.
type AliasTag struct {
	_ struct{} `capability:"inner,map"`
}
