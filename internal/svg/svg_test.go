package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 1, want: "1"},
		{in: 1.5, want: "1.5"},
		{in: 1.234, want: "1.23"},
		{in: -0.001, want: "0"},
		{in: 50, want: "50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Num(tt.in))
		})
	}
}

func TestPaint(t *testing.T) {
	t.Run("empty paint inherits currentColor", func(t *testing.T) {
		assert.Equal(t, CurrentColor, Paint{}.Ink())
		assert.Equal(t, Attr{Key: "fill", Value: CurrentColor}, Paint{}.Fill())
	})

	t.Run("concrete colour is threaded through strokes", func(t *testing.T) {
		attrs := Paint{Color: "#ff0000"}.Stroke(3)
		assert.Contains(t, attrs, Attr{Key: "stroke", Value: "#ff0000"})
		assert.Contains(t, attrs, Attr{Key: "stroke-width", Value: "3"})
	})
}

func TestDocument(t *testing.T) {
	t.Run("default paint avoids a fixed colour", func(t *testing.T) {
		doc := Document(DefaultPaint(), nil, Circle(50, 50, 10, DefaultPaint().Fill()))
		assert.Contains(t, doc, `viewBox="0 0 100 100"`)
		assert.Contains(t, doc, `fill="currentColor"`)
		assert.NotContains(t, doc, `color="`)
	})

	t.Run("concrete paint sets root colour and background", func(t *testing.T) {
		doc := Document(Paint{Color: "#112233", Background: "#ffffff"}, nil, Circle(50, 50, 10))
		assert.Contains(t, doc, `color="#112233"`)
		assert.Contains(t, doc, `fill="#ffffff"`)
	})

	t.Run("text content is escaped", func(t *testing.T) {
		doc := Document(DefaultPaint(), nil, Text(10, 10, "A&B <co>"))
		assert.Contains(t, doc, "A&amp;B &lt;co&gt;")
	})
}

func TestInspect(t *testing.T) {
	paint := DefaultPaint()
	id := ID("m", "brand")
	doc := Document(paint,
		[]string{
			Mask(id, Circle(50, 50, 10, Cut())),
			LinearGradient("g1", 45, paint, Stop{Offset: 0, Opacity: 1}, Stop{Offset: 1, Opacity: 0.5}),
		},
		Group([]Attr{Masked(id)},
			Rect(10, 10, 80, 80, paint.Fill()),
			Path("M10 10 L90 90", paint.Stroke(2)...),
			Line(10, 90, 90, 10, paint.Stroke(6)...),
		),
	)

	st, err := Inspect(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Elements, "mask content is not drawable")
	assert.Equal(t, 1, st.Masks)
	assert.Equal(t, 1, st.Gradients)
	assert.Equal(t, 1, st.Groups)
	assert.Equal(t, 2.0, st.MinStroke)
	assert.Equal(t, 6.0, st.MaxStroke)
	assert.False(t, st.HasText)
}

func TestID(t *testing.T) {
	assert.Equal(t, ID("m", "a", "b"), ID("m", "a", "b"))
	assert.NotEqual(t, ID("m", "a", "b"), ID("m", "ab"))
}
