// Package prior transforms unit-hypercube samples into physical model
// parameters via cached inverse-CDF tables, the contract nested-sampling
// engines expect.
//
// Each parameter kind owns a table of quantile anchors evaluated once at
// construction; per-sample work is a clamped two-point linear blend, so
// the transform is cheap enough for a sampler's innermost loop. The
// velocity-offset block is transformed left-to-right with each component
// confined to the interval above its predecessor, which removes the
// label-switching degeneracy of multi-component fits.
package prior
