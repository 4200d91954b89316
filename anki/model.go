// Package anki — the verb pair note type definition.
// Field order, styling, and the three card templates are part of the sync
// contract: changing them orphans existing notes.
package anki

// NoteFieldNames is the ordered field list of the verb pair note type.
var NoteFieldNames = []string{
	"VerbPairID",
	"IntransitiveKanji",
	"IntransitiveReading",
	"TransitiveKanji",
	"TransitiveReading",
	"Level",
	"Image",
	"PracticeQuestions",
	"Answers",
	"SourceURL",
	"Attribution",
}

// noteCSS styles all cards of the note type.
const noteCSS = `
.card {
    font-family: "Hiragino Kaku Gothic Pro", "Yu Gothic", "Meiryo", sans-serif;
    font-size: 24px;
    text-align: center;
    color: #333;
    background-color: #fafafa;
    padding: 20px;
}

.verb-pair {
    font-size: 36px;
    font-weight: bold;
    margin: 20px 0;
}

.intransitive {
    color: #2196F3;
}

.transitive {
    color: #4CAF50;
}

.particle {
    font-size: 18px;
    color: #666;
    margin: 10px 0;
}

.image-container {
    margin: 20px 0;
}

.image-container img {
    max-width: 100%;
    max-height: 400px;
    border-radius: 8px;
    box-shadow: 0 2px 8px rgba(0,0,0,0.1);
}

.examples {
    text-align: left;
    font-size: 18px;
    line-height: 1.8;
    margin: 20px auto;
    max-width: 500px;
}

.practice {
    text-align: left;
    font-size: 16px;
    line-height: 2;
    margin: 20px auto;
    max-width: 500px;
    background: #f5f5f5;
    padding: 15px;
    border-radius: 8px;
}

.level-tag {
    display: inline-block;
    padding: 4px 12px;
    border-radius: 12px;
    font-size: 12px;
    margin-bottom: 10px;
}

.level-beginner { background: #E8F5E9; color: #2E7D32; }
.level-intermediate { background: #FFF3E0; color: #E65100; }
.level-advanced { background: #FCE4EC; color: #C2185B; }

.attribution {
    font-size: 10px;
    color: #999;
    margin-top: 20px;
}
`

// noteTemplates are the three cards generated per note: pair recognition
// plus one recall direction per verb side.
var noteTemplates = []CardTemplate{
	{
		Name: "Verb Pair Recognition",
		Front: `
<div class="level-tag level-{{Level}}">{{Level}}</div>

<div class="image-container">
{{Image}}
</div>

<div class="verb-pair">
    <span class="intransitive">{{IntransitiveKanji}}</span>
    ・
    <span class="transitive">{{TransitiveKanji}}</span>
</div>

<div class="particle">
    が (intransitive) vs を (transitive)
</div>
`,
		Back: `
{{FrontSide}}

<hr>

<div class="verb-pair">
    <span class="intransitive">{{IntransitiveKanji}}{{#IntransitiveReading}}（{{IntransitiveReading}}）{{/IntransitiveReading}}</span>
    ・
    <span class="transitive">{{TransitiveKanji}}{{#TransitiveReading}}（{{TransitiveReading}}）{{/TransitiveReading}}</span>
</div>

<div class="particle">
    <strong>自動詞</strong>: 〜が {{IntransitiveKanji}}<br>
    <strong>他動詞</strong>: 〜を {{TransitiveKanji}}
</div>

<div class="practice">
<strong>Practice:</strong><br>
{{PracticeQuestions}}
</div>

<div class="examples">
<strong>Answers:</strong><br>
{{Answers}}
</div>

<div class="attribution">
{{Attribution}} | <a href="{{SourceURL}}">Source</a>
</div>
`,
	},
	{
		Name: "Intransitive → Transitive",
		Front: `
<div class="level-tag level-{{Level}}">{{Level}}</div>

<p>What is the <strong>transitive</strong> (他動詞) pair of:</p>

<div class="verb-pair">
    <span class="intransitive">{{IntransitiveKanji}}</span>
</div>

<div class="particle">
    (〜が {{IntransitiveKanji}})
</div>
`,
		Back: `
{{FrontSide}}

<hr>

<div class="verb-pair">
    <span class="transitive">{{TransitiveKanji}}{{#TransitiveReading}}（{{TransitiveReading}}）{{/TransitiveReading}}</span>
</div>

<div class="particle">
    〜を {{TransitiveKanji}}
</div>

<div class="image-container">
{{Image}}
</div>
`,
	},
	{
		Name: "Transitive → Intransitive",
		Front: `
<div class="level-tag level-{{Level}}">{{Level}}</div>

<p>What is the <strong>intransitive</strong> (自動詞) pair of:</p>

<div class="verb-pair">
    <span class="transitive">{{TransitiveKanji}}</span>
</div>

<div class="particle">
    (〜を {{TransitiveKanji}})
</div>
`,
		Back: `
{{FrontSide}}

<hr>

<div class="verb-pair">
    <span class="intransitive">{{IntransitiveKanji}}{{#IntransitiveReading}}（{{IntransitiveReading}}）{{/IntransitiveReading}}</span>
</div>

<div class="particle">
    〜が {{IntransitiveKanji}}
</div>

<div class="image-container">
{{Image}}
</div>
`,
	},
}
