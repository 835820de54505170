package datauri

import "testing"

func TestParse_ValidPNG(t *testing.T) {
	img, err := Parse("data:image/png;base64,iVBORw0KGgo=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MediaType != "image/png" {
		t.Errorf("media type = %q, want image/png", img.MediaType)
	}
	if img.Base64 != "iVBORw0KGgo=" {
		t.Errorf("payload = %q", img.Base64)
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/a.png",
		"data:text/plain;base64,aGk=",
		"data:image/png,raw-not-base64",
		"data:image/png;base64,",
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) should fail", c)
		}
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage("data:image/jpeg;base64,AAAA") {
		t.Error("jpeg data URI should be recognized")
	}
	if IsImage("data:application/pdf;base64,AAAA") {
		t.Error("non-image data URI should be rejected")
	}
}

func TestEstimatedDecodedSize(t *testing.T) {
	// 8 base64 chars encode 6 bytes.
	if got := EstimatedDecodedSize("data:image/png;base64,AAAAAAAA"); got != 6 {
		t.Errorf("estimate = %d, want 6", got)
	}
}
