package vision

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/pawmatch/internal/models"
)

// Classifier runs a local ONNX pet classifier. The model is expected to
// take a single [1,3,224,224] float32 input named "input" and produce a
// [1,len(labels)] logits output named "output"; labels come from a text
// file with one class name per line, aligned with the output indices.
type Classifier struct {
	mu           sync.Mutex // ORT sessions are not safe for concurrent Run
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	labels       []string
	threshold    float64
	inputW       int
	inputH       int
}

// NewClassifier loads the classifier model and its label file. The ONNX
// runtime environment must already be initialized by the caller.
func NewClassifier(modelPath, labelsPath string, threshold float64) (*Classifier, error) {
	labels, err := loadLabels(labelsPath)
	if err != nil {
		return nil, err
	}

	inputW, inputH := 224, 224

	inputShape := ort.NewShape(1, 3, int64(inputH), int64(inputW))
	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	outputShape := ort.NewShape(1, int64(len(labels)))
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"},
		[]string{"output"},
		[]ort.Value{inputTensor},
		[]ort.Value{outputTensor},
		nil,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("create classifier session: %w", err)
	}

	return &Classifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		labels:       labels,
		threshold:    threshold,
		inputW:       inputW,
		inputH:       inputH,
	}, nil
}

func (c *Classifier) Name() string { return "local" }

// Analyze classifies the image and maps the winning label to pet
// attributes. A winner below the confidence threshold yields an empty
// result with confidence 0, mirroring a zero-detection response.
func (c *Classifier) Analyze(_ context.Context, imageData []byte) (models.PetFeatures, error) {
	img, err := decodeImage(imageData)
	if err != nil {
		return models.PetFeatures{}, err
	}

	input := imageToTensor(img, c.inputW, c.inputH, 127.5, 127.5)

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.inputTensor.GetData(), input)

	if err := c.session.Run(); err != nil {
		return models.PetFeatures{}, fmt.Errorf("run classifier: %w", err)
	}

	probs := softmax(c.outputTensor.GetData())

	bestIdx := 0
	for i, p := range probs {
		if p > probs[bestIdx] {
			bestIdx = i
		}
	}

	confidence := float64(probs[bestIdx])
	if confidence < c.threshold {
		return models.PetFeatures{Confidence: 0}, nil
	}

	return featuresFromLabel(c.labels[bestIdx], confidence), nil
}

func (c *Classifier) Close() {
	if c.session != nil {
		c.session.Destroy()
	}
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
}

func loadLabels(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}

	var labels []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			labels = append(labels, line)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels file %s is empty", path)
	}
	return labels, nil
}

func softmax(logits []float32) []float32 {
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	out := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxLogit))
		out[i] = float32(e)
		sum += e
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / sum)
	}
	return out
}
