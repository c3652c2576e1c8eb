package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/query"
	"github.com/krvjanand/physician-directory/internal/settings"
)

func boolPtr(v bool) *bool { return &v }

func TestBuildProviderFilterEmptySpec(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{})
	assert.Empty(t, filter, "no constraints means an unconditional find")
}

func TestBuildProviderFilterNilBoolAddsNoClause(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{})
	for _, field := range []string{
		"acceptingNewPatients", "virtualCareAvailable",
		"hospitalAffiliations", "boardCertified",
	} {
		_, present := filter[field]
		assert.False(t, present, "unset %s must not constrain the query", field)
	}

	// An explicit false is a real constraint, not "unset".
	filter = buildProviderFilter(query.FilterSpec{BoardCertified: boolPtr(false)})
	assert.Equal(t, false, filter["boardCertified"])
}

func TestBuildProviderFilterNameSearchesAllNameFields(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{Name: "smith"})

	groups, ok := filter["$and"].(bson.A)
	require.True(t, ok)
	require.Len(t, groups, 1)

	or, ok := groups[0].(bson.M)["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	fields := make([]string, 0, 3)
	for _, clause := range or {
		for field, v := range clause.(bson.M) {
			fields = append(fields, field)
			re, ok := v.(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, "smith", re.Pattern)
			assert.Equal(t, "i", re.Options, "name matching is case-insensitive")
		}
	}
	assert.ElementsMatch(t, []string{"firstName", "lastName", "middleInitial"}, fields)
}

func TestBuildProviderFilterLocationAndNameCombineWithAnd(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{Name: "smith", Location: "columbus"})

	groups, ok := filter["$and"].(bson.A)
	require.True(t, ok)
	assert.Len(t, groups, 2, "name and location are independent OR-groups joined by AND")
}

func TestBuildProviderFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{Specialty: "ear. nose (throat)"})

	re, ok := filter["specialtyName"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `ear\. nose \(throat\)`, re.Pattern)
}

func TestBuildProviderFilterScalarConstraints(t *testing.T) {
	filter := buildProviderFilter(query.FilterSpec{
		Gender:        models.GenderFemale,
		MinExperience: 10,
		Languages:     []string{"Spanish", "Hindi"},
	})

	assert.Equal(t, models.GenderFemale, filter["gender"])
	assert.Equal(t, bson.M{"$gte": 10}, filter["yearsOfExperience"])
	assert.Equal(t, bson.M{"$in": []string{"Spanish", "Hindi"}}, filter["languagesSpoken"])
}

func TestBuildProviderFilterIgnoresMaskedFields(t *testing.T) {
	spec := query.FilterSpec{Gender: models.GenderFemale, MinExperience: 10}
	vis := settings.Defaults()
	vis[settings.KeyFilterGender] = false

	filter := buildProviderFilter(spec.ApplyVisibility(vis))

	_, present := filter["gender"]
	assert.False(t, present, "a disabled filter toggle voids its query clause")
	assert.Equal(t, bson.M{"$gte": 10}, filter["yearsOfExperience"])
}

func TestSortDocument(t *testing.T) {
	cases := map[string]bson.D{
		query.SortRating: {{Key: "rating", Value: -1}, {Key: "_id", Value: 1}},
		query.SortNameAsc: {
			{Key: "firstName", Value: 1}, {Key: "lastName", Value: 1}, {Key: "_id", Value: 1},
		},
		query.SortNameDesc: {
			{Key: "firstName", Value: -1}, {Key: "lastName", Value: -1}, {Key: "_id", Value: 1},
		},
		query.SortExperience: {{Key: "yearsOfExperience", Value: -1}, {Key: "_id", Value: 1}},
	}
	for sortBy, want := range cases {
		assert.Equal(t, want, sortDocument(sortBy), "sort key %q", sortBy)
	}

	assert.Nil(t, sortDocument(""), "no sort key keeps collection order")
	assert.Nil(t, sortDocument("bogus"))
}

func TestSortDocumentBreaksTiesOnID(t *testing.T) {
	for _, sortBy := range []string{
		query.SortRating, query.SortNameAsc, query.SortNameDesc, query.SortExperience,
	} {
		doc := sortDocument(sortBy)
		require.NotEmpty(t, doc)
		last := doc[len(doc)-1]
		assert.Equal(t, "_id", last.Key, "sort key %q", sortBy)
		assert.Equal(t, 1, last.Value)
	}
}

func viewProvider() *models.Provider {
	return &models.Provider{
		ID: "p1", FirstName: "Alice", LastName: "Smith",
		SpecialtyName: "Cardiology", City: "Columbus", State: "OH", ZipCode: "43004",
		PhoneNumber: "614-555-0100", EmailID: "alice@example.com",
		YearsOfExperience: 5, Rating: 4.2, Gender: models.GenderFemale,
		NpiID: "1234567890", LanguagesSpoken: []string{"Spanish"},
		BoardCertified: true, BoardName: "ABIM",
	}
}

func TestProviderViewAllTogglesOn(t *testing.T) {
	view := providerView(viewProvider(), settings.Defaults())

	assert.Equal(t, "p1", view["id"])
	assert.Equal(t, "Alice", view["firstName"])
	assert.Equal(t, models.GenderFemale, view["gender"])
	assert.Equal(t, 4.2, view["rating"])
	assert.Equal(t, "1234567890", view["npiId"])
}

func TestProviderViewOmitsHiddenFields(t *testing.T) {
	vis := settings.Defaults()
	vis[settings.KeyGender] = false
	vis[settings.KeyRating] = false
	vis[settings.KeyNPI] = false

	view := providerView(viewProvider(), vis)

	for _, field := range []string{"gender", "rating", "npiId"} {
		_, present := view[field]
		assert.False(t, present, "hidden field %q must be absent, not null", field)
	}

	// Fields with enabled toggles are untouched.
	assert.Equal(t, "Cardiology", view["specialtyName"])
	assert.Equal(t, "alice@example.com", view["emailId"])
}

func TestProviderViewBaseFieldsSurviveEveryToggle(t *testing.T) {
	vis := settings.Settings{}
	for _, k := range settings.KnownKeys {
		vis[k] = false
	}

	view := providerView(viewProvider(), vis)

	// Identity and address always render; only gated fields disappear.
	assert.Equal(t, "Alice", view["firstName"])
	assert.Equal(t, "Smith", view["lastName"])
	assert.Equal(t, "Columbus", view["city"])
	assert.Equal(t, "43004", view["zipCode"])
	for _, field := range []string{
		"type", "specialtyName", "phoneNumber", "emailId", "yearsOfExperience",
		"rating", "acceptingNewPatients", "virtualCareAvailable",
		"hospitalAffiliations", "boardCertified", "boardName",
		"affiliationName", "gender", "npiId", "languagesSpoken", "planName",
	} {
		_, present := view[field]
		assert.False(t, present, "gated field %q must be absent", field)
	}
}

func TestProviderViewMissingToggleCountsAsVisible(t *testing.T) {
	view := providerView(viewProvider(), settings.Settings{})
	assert.Equal(t, models.GenderFemale, view["gender"])
	assert.Equal(t, "Cardiology", view["specialtyName"])
}
