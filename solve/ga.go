package solve

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/faults"
)

// gaMutationRate is the per-child probability of a swap mutation.
const gaMutationRate = 0.1

// chromosome is an ordered list of access-point rows, one per item node,
// in visiting order. Start and end are not encoded; solveGenetic splices
// them in only to evaluate fitness.
type chromosome []int

// solveGenetic runs the ordered-crossover genetic solver over the
// item nodes [1, numNodes-2] — node 0 is always start and numNodes-1 is
// always end, per the root engine's node-ordering convention.
func solveGenetic(opts Options, cm *costgraph.CostMatrixResult, numNodes int) (Result, error) {
	ctx := opts.context()
	rng := rngFromSeed(opts.Seed)

	itemNodes := make([]int, 0, numNodes-2)
	for node := 1; node < numNodes-1; node++ {
		itemNodes = append(itemNodes, node)
	}
	if len(itemNodes) == 0 {
		return splicedResult(chromosome{}, cm, numNodes), nil
	}

	nodeAPs := make(map[int][]int, len(itemNodes))
	for _, node := range itemNodes {
		rows := make([]int, 0, 4)
		for row := node * 4; row < node*4+4; row++ {
			if cm.RowToAP[row] != -1 {
				rows = append(rows, row)
			}
		}
		nodeAPs[node] = rows
	}

	n := numNodes
	populationSize := n * (n - 1) / 2
	if populationSize < 2 {
		populationSize = 2
	}
	rounds := n * n / 2
	if rounds < 100 {
		rounds = 100
	}

	population := make([]chromosome, populationSize)
	for i := range population {
		population[i] = randomChromosome(itemNodes, nodeAPs, rng)
	}

	fitness := func(c chromosome) int {
		return chromosomeFitness(c, cm, numNodes)
	}
	sortByFitness(population, fitness)

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("solve: genetic algorithm cancelled: %w", faults.ErrBudget)
		}

		children := make([]chromosome, 0, populationSize)
		pairs := populationSize / 2
		for p := 0; p < pairs; p++ {
			parentA, parentB := population[2*p], population[2*p+1]
			// Each pair breeds off its own derived sub-stream rather than
			// the shared rng directly, so one pair's crossover cut or
			// mutation roll never shifts another pair's draws within the
			// same round.
			pairRNG := deriveRNG(rng, uint64(p))
			childA, childB := orderedCrossover(parentA, parentB, pairRNG)
			mutate(childA, pairRNG)
			mutate(childB, pairRNG)
			children = append(children, childA, childB)
		}

		population = append(population, children...)
		sortByFitness(population, fitness)
		population = population[:populationSize]
	}

	return splicedResult(population[0], cm, numNodes), nil
}

// sortByFitness sorts pop ascending by fitness, used both for initial
// ranking and the elitist truncation in the generation loop. Combining
// parents and children before sorting (rather than replacing wholesale)
// is what guarantees the best fitness never regresses across rounds.
func sortByFitness(pop []chromosome, fitness func(chromosome) int) {
	sort.SliceStable(pop, func(i, j int) bool {
		return fitness(pop[i]) < fitness(pop[j])
	})
}

// randomChromosome builds one individual: a uniformly shuffled order of
// item nodes, each paired with a uniformly chosen access point.
func randomChromosome(itemNodes []int, nodeAPs map[int][]int, rng *rand.Rand) chromosome {
	order := make([]int, len(itemNodes))
	copy(order, itemNodes)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	c := make(chromosome, len(order))
	for i, node := range order {
		aps := nodeAPs[node]
		c[i] = aps[rng.Intn(len(aps))]
	}

	return c
}

// chromosomeFitness is the spliced tour length start→chrom…→end→start,
// or infinity if two adjacent access points (including the start/end
// splice points) belong to the same node — a disallowed transition.
func chromosomeFitness(c chromosome, cm *costgraph.CostMatrixResult, numNodes int) int {
	startRow := startSingleRow(cm, startNodeIndex)
	endRow := startSingleRow(cm, numNodes-1)

	path := make([]int, 0, len(c)+2)
	path = append(path, startRow)
	path = append(path, c...)
	path = append(path, endRow)

	total := 0
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		if a/4 == b/4 {
			return infinity
		}
		cost, err := cm.Matrix.At(a, b)
		if err != nil || cost >= infinity {
			return infinity
		}
		total += cost
	}

	closing, err := cm.Matrix.At(endRow, startRow)
	if err != nil || closing >= infinity {
		return infinity
	}

	return total + closing
}

// startSingleRow returns the one real access-point row for a SingleNode
// (start or end), which occupies slot 0..3 of its four-row block.
func startSingleRow(cm *costgraph.CostMatrixResult, node int) int {
	for row := node * 4; row < node*4+4; row++ {
		if cm.RowToAP[row] != -1 {
			return row
		}
	}

	return node * 4
}

// orderedCrossover performs one-point ordered crossover:
// child A takes parent A's first k genes, then fills the remainder with
// parent B's genes (in parent-B order) whose node is not already present,
// preserving the "exactly one access point per node" invariant. Child B
// is the symmetric swap.
func orderedCrossover(parentA, parentB chromosome, rng *rand.Rand) (chromosome, chromosome) {
	n := len(parentA)
	if n == 0 {
		return chromosome{}, chromosome{}
	}
	k := rng.Intn(n)

	childA := orderedCrossoverChild(parentA, parentB, k)
	childB := orderedCrossoverChild(parentB, parentA, k)

	return childA, childB
}

func orderedCrossoverChild(prefixParent, fillParent chromosome, k int) chromosome {
	child := make(chromosome, 0, len(prefixParent))
	seen := make(map[int]bool, len(prefixParent))
	for i := 0; i < k; i++ {
		child = append(child, prefixParent[i])
		seen[prefixParent[i]/4] = true
	}
	for _, gene := range fillParent {
		if !seen[gene/4] {
			child = append(child, gene)
			seen[gene/4] = true
		}
	}

	return child
}

// mutate applies swap mutation with probability gaMutationRate: two
// visiting-order positions are exchanged, leaving each node's chosen
// access point untouched.
func mutate(c chromosome, rng *rand.Rand) {
	if len(c) < 2 || rng.Float64() >= gaMutationRate {
		return
	}
	i := rng.Intn(len(c))
	j := rng.Intn(len(c))
	c[i], c[j] = c[j], c[i]
}

// splicedResult converts the best chromosome into a Result over
// access-point indices, start first and end last.
func splicedResult(c chromosome, cm *costgraph.CostMatrixResult, numNodes int) Result {
	startRow := startSingleRow(cm, startNodeIndex)
	endRow := startSingleRow(cm, numNodes-1)

	rows := make([]int, 0, len(c)+2)
	rows = append(rows, startRow)
	rows = append(rows, c...)
	rows = append(rows, endRow)

	path := make([]int, len(rows))
	for i, row := range rows {
		path[i] = cm.RowToAP[row]
	}

	return Result{Path: path, Cost: chromosomeFitness(c, cm, numNodes)}
}
