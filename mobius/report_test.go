// SPDX-License-Identifier: MIT

package mobius_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JyotsnaGuntha/mobius-strip-model/mobius"
)

func TestReportFormatting(t *testing.T) {
	t.Parallel()
	r := mobius.Report{SurfaceArea: 1.2696228253, EdgeLength: 6.2908119989}
	assert.Equal(t, []string{"Surface Area ≈ 1.26962", "Edge Length ≈ 6.29081"}, r.Lines())
	assert.Equal(t, "Surface Area ≈ 1.26962\nEdge Length ≈ 6.29081", r.String())

	assert.Equal(t, "Surface Area ≈ 0.00000\nEdge Length ≈ 0.20000",
		mobius.Report{EdgeLength: 0.2}.String())
}
