package colour

import "testing"

func TestNewExtractor(t *testing.T) {
	extractor, err := NewExtractor(AlgorithmMedianCut)
	if err != nil {
		t.Fatalf("NewExtractor(mediancut) error = %v", err)
	}
	if _, ok := extractor.(*MedianCutExtractor); !ok {
		t.Errorf("NewExtractor(mediancut) = %T, want *MedianCutExtractor", extractor)
	}

	if _, err := NewExtractor(AlgorithmDominant); err == nil {
		t.Error("expected error for unimplemented algorithm")
	}
	if _, err := NewExtractor("nope"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{
			name:    "defaults",
			config:  DefaultExtractorConfig(),
			wantErr: false,
		},
		{
			name:    "zero iterations",
			config:  ExtractorConfig{Algorithm: AlgorithmMedianCut, Iterations: 0},
			wantErr: false,
		},
		{
			name:    "maximum iterations",
			config:  ExtractorConfig{Algorithm: AlgorithmMedianCut, Iterations: 8},
			wantErr: false,
		},
		{
			name:    "negative iterations",
			config:  ExtractorConfig{Algorithm: AlgorithmMedianCut, Iterations: -1},
			wantErr: true,
		},
		{
			name:    "too many iterations",
			config:  ExtractorConfig{Algorithm: AlgorithmMedianCut, Iterations: 9},
			wantErr: true,
		},
		{
			name:    "invalid algorithm",
			config:  ExtractorConfig{Algorithm: "nope", Iterations: 4},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
