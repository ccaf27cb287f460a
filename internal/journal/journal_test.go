package journal

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"habitjournal/internal/week"
)

func TestDayStatusCycle(t *testing.T) {
	s := StatusNone
	want := []DayStatus{StatusCheck, StatusCross, StatusNotApplicable, StatusNone, StatusCheck}
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("step %d: got %q, want %q", i, s, w)
		}
	}
	if got := DayStatus("bogus").Next(); got != StatusNone {
		t.Errorf("unknown status Next() = %q, want none", got)
	}
}

func TestDayStatusWireForm(t *testing.T) {
	task := Task{Text: "Run", Days: []DayStatus{StatusNone, StatusCheck, StatusCross, StatusNotApplicable, StatusNone, StatusNone, StatusNone}}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"text":"Run","days":[null,"check","x","na",null,null,null]}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestNewWeekRecordDefaults(t *testing.T) {
	rec := NewWeekRecord()
	if len(rec.Tasks) != 1 || rec.Tasks[0].Text != "" || len(rec.Tasks[0].Days) != Days {
		t.Fatalf("unexpected tasks: %+v", rec.Tasks)
	}
	if len(rec.Trackers.Water) != Days || len(rec.Trackers.Sleep) != Days {
		t.Fatalf("water=%d sleep=%d", len(rec.Trackers.Water), len(rec.Trackers.Sleep))
	}
	for i, e := range rec.Trackers.Sleep {
		if e != DefaultSleepEntry() {
			t.Errorf("sleep[%d] = %+v", i, e)
		}
	}
	if rec.Trackers.Appointments == nil || len(rec.Trackers.Appointments) != 0 {
		t.Errorf("appointments = %#v, want empty", rec.Trackers.Appointments)
	}
	if rec.Trackers.Food.Count() != 0 || rec.Trackers.Mood != MoodUnset || rec.Trackers.Weather != "" {
		t.Errorf("trackers not at defaults: %+v", rec.Trackers)
	}
}

func TestNormalizeHealsLegacyShapes(t *testing.T) {
	blob := `{
		"tasks": [{"text": "Read", "days": ["check", null, "x"]}],
		"trackers": {
			"water": [true, false],
			"sleep": 7.5,
			"mood": "ecstatic",
			"appointments": "none",
			"fitness": {"type": "Run", "duration": 30}
		},
		"weekOf": "Jun 10"
	}`

	rec, ok := DecodeLegacyRecord([]byte(blob))
	if !ok {
		t.Fatal("DecodeLegacyRecord rejected an object")
	}
	rec = Normalize(rec)

	if got := rec.Tasks[0].Days; len(got) != Days || got[0] != StatusCheck || got[2] != StatusCross || got[6] != StatusNone {
		t.Errorf("task days = %v", got)
	}
	if !reflect.DeepEqual(rec.Trackers.Water, make([]bool, Days)) {
		t.Errorf("water = %v", rec.Trackers.Water)
	}
	if len(rec.Trackers.Sleep) != Days || rec.Trackers.Sleep[3] != DefaultSleepEntry() {
		t.Errorf("sleep = %+v", rec.Trackers.Sleep)
	}
	if rec.Trackers.Mood != MoodUnset {
		t.Errorf("mood = %q", rec.Trackers.Mood)
	}
	if rec.Trackers.Appointments == nil || len(rec.Trackers.Appointments) != 0 {
		t.Errorf("appointments = %#v", rec.Trackers.Appointments)
	}
	if rec.Trackers.Fitness.Duration != "30" {
		t.Errorf("fitness duration = %q", rec.Trackers.Fitness.Duration)
	}
	if rec.WeekOf != "Jun 10" {
		t.Errorf("weekOf = %q", rec.WeekOf)
	}
}

func TestNormalizeMissingMeridiems(t *testing.T) {
	sleep := make([]SleepEntry, Days)
	sleep[2] = SleepEntry{Wake: "7:00", Bed: "11:00", Hours: "8", BedMeridiem: "pm"}
	rec := Normalize(WeekRecord{Trackers: Trackers{Sleep: sleep}})

	e := rec.Trackers.Sleep[2]
	if e.WakeMeridiem != AM || e.BedMeridiem != PM || e.Hours != "8" || e.Wake != "7:00" {
		t.Errorf("entry = %+v", e)
	}
	if rec.Trackers.Sleep[0] != DefaultSleepEntry() {
		t.Errorf("empty entry = %+v", rec.Trackers.Sleep[0])
	}
}

func TestNormalizeKeepsEmptyTaskList(t *testing.T) {
	rec := Normalize(WeekRecord{Tasks: []Task{}})
	if len(rec.Tasks) != 0 {
		t.Errorf("explicit empty task list was reseeded: %+v", rec.Tasks)
	}
}

func TestNormalizeIsPureAndIdempotent(t *testing.T) {
	in := WeekRecord{
		Tasks:    []Task{{Text: "A", Days: []DayStatus{StatusCheck}}},
		Trackers: Trackers{Water: []bool{true}},
	}
	once := Normalize(in)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize not idempotent:\n%+v\n%+v", once, twice)
	}
	if len(in.Tasks[0].Days) != 1 || len(in.Trackers.Water) != 1 {
		t.Error("Normalize mutated its input")
	}
}

func TestTrackersWeatherNull(t *testing.T) {
	rec := NewWeekRecord()
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"weather":null`) || !strings.Contains(string(data), `"mood":null`) {
		t.Errorf("unset weather/mood should encode as null: %s", data)
	}
	if strings.Contains(string(data), "focusSessions") {
		t.Errorf("zero focusSessions should be omitted: %s", data)
	}

	rec.Trackers.Weather = "sunny"
	rec.Trackers.Mood = MoodGood
	data, _ = json.Marshal(rec)
	var back WeekRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Trackers.Weather != "sunny" || back.Trackers.Mood != MoodGood {
		t.Errorf("round trip lost weather/mood: %+v", back.Trackers)
	}
}

func TestDecodeState(t *testing.T) {
	blob := `{"currentWeek":"2024-06-10","profile":{"xp":35,"level":1,"streakDays":1,"longestStreak":3,"unlockedThemes":["forest"]},"weeks":{"2024-06-10":{"tasks":[]},"2024-06-03":null}}`
	st, ok := DecodeState([]byte(blob))
	if !ok {
		t.Fatal("DecodeState rejected a valid blob")
	}
	NormalizeState(st, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))

	if st.CurrentWeek != "2024-06-10" {
		t.Errorf("currentWeek = %s", st.CurrentWeek)
	}
	if st.Profile.XP != 35 || st.Profile.LongestStreak != 3 || !st.Profile.HasTheme("forest") {
		t.Errorf("profile = %+v", st.Profile)
	}
	if _, ok := st.Weeks["2024-06-03"]; ok {
		t.Error("null week record should be dropped")
	}
	if rec := st.Weeks["2024-06-10"]; rec == nil || len(rec.Trackers.Water) != Days {
		t.Errorf("record not normalized: %+v", rec)
	}
}

func TestDecodeStateRejectsNonObjects(t *testing.T) {
	for _, blob := range []string{"", "null", "[]", "42", "{not json"} {
		if _, ok := DecodeState([]byte(blob)); ok {
			t.Errorf("DecodeState(%q) accepted", blob)
		}
	}
}

func TestNormalizeStateRepairsCurrentWeek(t *testing.T) {
	st := &AppState{CurrentWeek: "yesterday"}
	now := time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC)
	NormalizeState(st, now)
	if st.CurrentWeek != week.KeyOf(now) {
		t.Errorf("currentWeek = %s", st.CurrentWeek)
	}
	if st.Weeks[st.CurrentWeek] == nil {
		t.Error("current week record not created")
	}
	if st.Profile.UnlockedThemes == nil {
		t.Error("unlockedThemes should be an empty set, not nil")
	}
}

func TestSleepHours(t *testing.T) {
	tests := []struct {
		name  string
		wake  string
		wakeM Meridiem
		bed   string
		bedM  Meridiem
		want  string
		ok    bool
	}{
		{"overnight", "7:00", AM, "11:00", PM, "8", true},
		{"half hours", "6:30", AM, "10:00", PM, "8.5", true},
		{"after midnight", "9", AM, "1:15", AM, "7.8", true},
		{"midnight bed", "8:00", AM, "12:00", AM, "8", true},
		{"nap", "3:00", PM, "1:00", PM, "2", true},
		{"same time", "7:00", AM, "7:00", AM, "0", true},
		{"missing bed", "7:00", AM, "", PM, "", false},
		{"garbage", "soon", AM, "11:00", PM, "", false},
		{"bad minutes", "7:xx", AM, "11:00", PM, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SleepHours(tt.wake, tt.wakeM, tt.bed, tt.bedM)
			if ok != tt.ok || got != tt.want {
				t.Errorf("SleepHours = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSetSleepTimesLeavesHoursOnBadInput(t *testing.T) {
	rec := NewWeekRecord()
	if err := rec.SetSleepHours(0, "6"); err != nil {
		t.Fatalf("SetSleepHours: %v", err)
	}
	e, err := rec.SetSleepTimes(0, "later", AM, "11:00", PM)
	if err != nil {
		t.Fatalf("SetSleepTimes: %v", err)
	}
	if e.Hours != "6" {
		t.Errorf("hours = %q, want untouched 6", e.Hours)
	}
}

func TestRecordTaskOps(t *testing.T) {
	rec := NewWeekRecord()
	if err := rec.RenameTask(0, "A"); err != nil {
		t.Fatal(err)
	}
	rec.AddTask("B")
	rec.AddTask("C")

	if err := rec.MoveTask(0, 2); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	var order []string
	for _, task := range rec.Tasks {
		order = append(order, task.Text)
	}
	if strings.Join(order, "") != "BCA" {
		t.Errorf("order after move = %v", order)
	}

	st, err := rec.CycleDay(2, 6)
	if err != nil || st != StatusCheck {
		t.Fatalf("CycleDay = %q, %v", st, err)
	}
	if rec.CheckCount() != 1 {
		t.Errorf("CheckCount = %d", rec.CheckCount())
	}

	if err := rec.RemoveTask(5); !errors.Is(err, ErrTaskIndex) {
		t.Errorf("RemoveTask(5) err = %v", err)
	}
	if _, err := rec.CycleDay(0, 7); err == nil {
		t.Error("expected day range error")
	}
	if err := rec.RemoveTask(0); err != nil {
		t.Fatal(err)
	}
	if len(rec.Tasks) != 2 {
		t.Errorf("len(tasks) = %d", len(rec.Tasks))
	}
}

func TestApplyTemplate(t *testing.T) {
	rec := NewWeekRecord()
	if err := ApplyTemplate(rec, "morning routine"); err != nil {
		t.Fatalf("ApplyTemplate: %v", err)
	}
	if len(rec.Tasks) != 6 || rec.Tasks[1].Text != "Wake up early" {
		t.Errorf("tasks = %+v", rec.Tasks)
	}
	var pe ParseError
	if err := ApplyTemplate(rec, "Nope"); !errors.As(err, &pe) {
		t.Errorf("unknown template err = %v", err)
	}
}

func TestParseDay(t *testing.T) {
	tests := map[string]int{"mon": 0, "Tuesday": 1, "we": 2, "7": 6, "1": 0, "sun": 6, "sa": 5}
	for in, want := range tests {
		got, err := ParseDay(in)
		if err != nil || got != want {
			t.Errorf("ParseDay(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "0", "8", "x", "t"} {
		if _, err := ParseDay(in); err == nil {
			t.Errorf("ParseDay(%q) should fail", in)
		}
	}
}

func TestMoodScore(t *testing.T) {
	if MoodRad.Score() != 5 || MoodAwful.Score() != 1 || MoodUnset.Score() != 0 {
		t.Errorf("scores: rad=%d awful=%d unset=%d", MoodRad.Score(), MoodAwful.Score(), MoodUnset.Score())
	}
}
