package raster

import "testing"

func TestSimilarRGB_Reflexive(t *testing.T) {
	c := RGB{R: 120, G: 45, B: 200}
	for _, tol := range []int{0, 1, 32, 255} {
		if !SimilarRGB(c, c, tol) {
			t.Errorf("SimilarRGB(c, c, %d) = false, want true", tol)
		}
	}
}

func TestSimilarRGB_Symmetric(t *testing.T) {
	a := RGB{R: 100, G: 100, B: 100}
	b := RGB{R: 90, G: 110, B: 95}
	for _, tol := range []int{0, 5, 10, 20} {
		if SimilarRGB(a, b, tol) != SimilarRGB(b, a, tol) {
			t.Errorf("tolerance %d: predicate is not symmetric", tol)
		}
	}
}

func TestSimilarRGB_ToleranceBoundary(t *testing.T) {
	a := RGB{R: 100, G: 100, B: 100}

	// Diff exactly equal to tolerance: similar.
	b := RGB{R: 110, G: 100, B: 100}
	if !SimilarRGB(a, b, 10) {
		t.Error("diff == tolerance should be similar")
	}

	// Diff of tolerance+1 on one channel: not similar.
	c := RGB{R: 111, G: 100, B: 100}
	if SimilarRGB(a, c, 10) {
		t.Error("diff == tolerance+1 should not be similar")
	}
}

func TestSimilarRGB_AllChannelsChecked(t *testing.T) {
	a := RGB{R: 100, G: 100, B: 100}

	cases := []RGB{
		{R: 120, G: 100, B: 100},
		{R: 100, G: 120, B: 100},
		{R: 100, G: 100, B: 120},
	}
	for _, b := range cases {
		if SimilarRGB(a, b, 10) {
			t.Errorf("one channel out of tolerance should fail: %+v", b)
		}
		if !SimilarRGB(a, b, 20) {
			t.Errorf("all channels within tolerance should pass: %+v", b)
		}
	}
}

func TestSimilarLab_Reflexive(t *testing.T) {
	c := RGB{R: 34, G: 177, B: 76}
	if !SimilarLab(c, c, 0) {
		t.Error("SimilarLab(c, c, 0) = false, want true")
	}
}

func TestSimilarLab_Ordering(t *testing.T) {
	grass := RGB{R: 60, G: 140, B: 50}
	grassShaded := RGB{R: 50, G: 120, B: 45}
	sky := RGB{R: 120, G: 180, B: 230}

	// Two greens should be closer than green and blue at the same tolerance.
	tol := 40
	if !SimilarLab(grass, grassShaded, tol) {
		t.Error("shaded grass should match grass perceptually")
	}
	if SimilarLab(grass, sky, tol) {
		t.Error("sky should not match grass perceptually")
	}
}

func TestSimilar_ModeDispatch(t *testing.T) {
	a := RGB{R: 100, G: 100, B: 100}
	b := RGB{R: 111, G: 100, B: 100}

	if Similar(CompareRGB, a, b, 10) {
		t.Error("CompareRGB should reject diff of tolerance+1")
	}
	if !Similar(CompareRGB, a, b, 11) {
		t.Error("CompareRGB should accept diff of tolerance")
	}
	if !Similar(CompareLab, a, a, 0) {
		t.Error("CompareLab should accept identical colors")
	}
}
