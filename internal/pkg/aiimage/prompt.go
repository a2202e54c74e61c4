package aiimage

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/jmk307/hellmap-api/internal/pkg/region"
)

// stylesuffix closes every scene prompt with the shared art direction.
const styleSuffix = "Cartoon style, exaggerated facial expressions, hellmap-style emotional chaos, emotion-focused, Korean street vibe."

// actionPhrases maps content keywords to the activity the prompt describes.
var actionPhrases = []struct {
	Keywords []string
	Action   string
}{
	{[]string{"앉아", "탔는데", "타고"}, "sitting in a car"},
	{[]string{"걸어", "가는데", "지나가"}, "walking down the street"},
	{[]string{"넘어", "떨어", "미끄러"}, "tripping and falling"},
	{[]string{"기다", "서있", "줄서"}, "waiting in line"},
	{[]string{"먹고", "시켰", "주문"}, "eating at a restaurant"},
	{[]string{"공부", "도서관", "책"}, "studying at a library"},
	{[]string{"일하", "알바", "직장"}, "working at their job"},
}

var emotionPhrases = map[string][]string{
	"SCARY": {
		"terrified as strange sounds echo around them",
		"frightened by mysterious shadows and flickering lights",
		"scared and trembling from an unexplainable experience",
	},
	"ANNOYING": {
		"frustrated and angry at the unfair treatment",
		"irritated by the rude behavior of others",
		"annoyed and complaining about the poor service",
	},
	"FUNNY": {
		"laughing at the absurd situation unfolding",
		"amused by the ridiculous misunderstanding",
		"giggling at the unexpected comedy of errors",
	},
}

var situationPhrases = []string{
	"struggling while people awkwardly watch",
	"dealing with a frustrating situation as others ignore them",
	"experiencing something bizarre while bystanders react",
	"facing an unexpected challenge in public",
	"caught in an embarrassing moment with witnesses around",
}

var reactionPhrases = []string{
	"everyone sweating and fanning themselves in the heat",
	"people pointing and whispering about what they witnessed",
	"the crowd either laughing or looking away uncomfortably",
	"bystanders taking photos or videos of the scene",
	"others shaking their heads in disbelief or amusement",
}

var defaultSceneParts = []string{
	"A person is walking down the street, looking confused and lost.",
	"Another person is waiting at a bus stop, checking their phone impatiently.",
	"Meanwhile, the street is bustling with everyday urban life, people going about their business.",
}

// emotionSceneKeywords flavor the district landscape prompt.
var emotionSceneKeywords = map[string]string{
	"SCARY":    "dark, horror, nightmare, eerie, sinister",
	"ANNOYING": "chaotic, frustrated, irritating, overwhelming",
	"FUNNY":    "comedic, whimsical, cartoon, playful, amusing",
}

// ScenePrompt composes the generation prompt for a bucket from its three
// most-liked reports: an action + emotion line for the first, an action +
// situation line for the second and a crowd reaction for the third, padded
// with stock lines when fewer reports exist.
func ScenePrompt(bucket *region.Bucket, rng *rand.Rand) string {
	top := make([]region.Report, len(bucket.Reports))
	copy(top, bucket.Reports)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Likes > top[j].Likes
	})
	if len(top) > 3 {
		top = top[:3]
	}

	var parts []string
	if len(top) >= 1 {
		parts = append(parts, fmt.Sprintf("A person is %s, %s.",
			actionFor(top[0].Content), pick(rng, emotionPhrasesFor(top[0].Emotion))))
	}
	if len(top) >= 2 {
		parts = append(parts, fmt.Sprintf("Another person is %s, %s.",
			actionFor(top[1].Content), pick(rng, situationPhrases)))
	}
	if len(top) >= 3 {
		parts = append(parts, fmt.Sprintf("Meanwhile, %s.", pick(rng, reactionPhrases)))
	}
	for len(parts) < 3 {
		parts = append(parts, defaultSceneParts[len(parts)])
	}

	// single spaces throughout, the way the prompt reaches the image API
	return strings.Join(parts, " ") + " " + styleSuffix
}

// DistrictPrompt composes the landscape-style prompt used when a bucket has
// no reports worth narrating (for example the server-side regions snapshot).
func DistrictPrompt(regionName, dominantEmotion string, hellLevel int) string {
	name := strings.TrimPrefix(regionName, "서울특별시 ")
	desc, ok := emotionSceneKeywords[dominantEmotion]
	if !ok {
		desc = "urban"
	}
	return fmt.Sprintf(
		"Seoul %s district, Korean urban landscape, %s, hell level %d, cartoon style illustration, vibrant colors, emotional atmosphere",
		name, desc, hellLevel)
}

func actionFor(content string) string {
	for _, p := range actionPhrases {
		for _, k := range p.Keywords {
			if strings.Contains(content, k) {
				return p.Action
			}
		}
	}
	return "going about their daily routine"
}

func emotionPhrasesFor(emotion string) []string {
	if phrases, ok := emotionPhrases[emotion]; ok {
		return phrases
	}
	return emotionPhrases["SCARY"]
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}
