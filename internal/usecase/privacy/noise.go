package privacy

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// wordCountSensitivity is the query sensitivity for the word-count noise.
const wordCountSensitivity = 1.0

// maxReleasedKeywords caps the keyword list after shuffling.
const maxReleasedKeywords = 20

// injectNoise perturbs the word count with Laplace noise scaled by
// sensitivity/epsilon, then shuffles and caps the keyword list so ordering
// leaks less about the source document.
func (p *Pipeline) injectNoise(f *domain.PrivateFeatures) {
	noise := distuv.Laplace{
		Mu:    0,
		Scale: wordCountSensitivity / p.cfg.Epsilon,
		Src:   p.rng,
	}.Rand()

	noisy := int(float64(f.WordCount) + noise)
	if noisy < 0 {
		noisy = 0
	}
	f.WordCount = noisy

	p.rng.Shuffle(len(f.Keywords), func(i, j int) {
		f.Keywords[i], f.Keywords[j] = f.Keywords[j], f.Keywords[i]
	})
	if len(f.Keywords) > maxReleasedKeywords {
		f.Keywords = f.Keywords[:maxReleasedKeywords]
	}
}
