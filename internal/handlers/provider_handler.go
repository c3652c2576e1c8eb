package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/query"
	"github.com/krvjanand/physician-directory/internal/settings"
)

// GetProviders serves the filtered, sorted, paginated listing. The query
// parameters mirror query.FilterSpec; filters whose admin toggle is off are
// ignored even if a client still sends them, and hidden fields are stripped
// from every returned record.
func (h *Handler) GetProviders(c *gin.Context) {
	ctx := c.Request.Context()

	spec, page, perPage := query.ParseValues(c.Request.URL.Query())
	vis := h.Settings.Load(ctx)
	spec = spec.ApplyVisibility(vis)

	filter := buildProviderFilter(spec)
	findOptions := options.Find().
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	if sortDoc := sortDocument(spec.SortBy); sortDoc != nil {
		findOptions.SetSort(sortDoc)
	}

	collection := h.DB.Collection("providers")
	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		h.Log.Error().Err(err).Msg("counting providers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve providers"})
		return
	}

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		h.Log.Error().Err(err).Msg("listing providers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve providers"})
		return
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err = cursor.All(ctx, &providers); err != nil {
		h.Log.Error().Err(err).Msg("decoding providers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode providers"})
		return
	}

	views := make([]gin.H, 0, len(providers))
	for i := range providers {
		views = append(views, providerView(&providers[i], vis))
	}

	pages := query.Pagination{PerPage: perPage, Total: int(total)}
	c.JSON(http.StatusOK, gin.H{
		"providers": views,
		"total":     total,
		"page":      page,
		"pages":     pages.TotalPages(),
	})
}

// GetProvider serves a single provider by id, with the same field gating as
// the listing.
func (h *Handler) GetProvider(c *gin.Context) {
	ctx := c.Request.Context()

	var provider models.Provider
	collection := h.DB.Collection("providers")
	err := collection.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&provider)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Str("id", c.Param("id")).Msg("loading provider failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve provider"})
		return
	}

	c.JSON(http.StatusOK, providerView(&provider, h.Settings.Load(ctx)))
}

// buildProviderFilter compiles the spec into a mongo filter with the same
// semantics as query.Matches: AND across fields, OR within languages,
// case-insensitive substring matching for the text fields.
func buildProviderFilter(spec query.FilterSpec) bson.M {
	filter := bson.M{}
	var groups bson.A

	if spec.Name != "" {
		re := ciContains(spec.Name)
		groups = append(groups, bson.M{"$or": bson.A{
			bson.M{"firstName": re},
			bson.M{"lastName": re},
			bson.M{"middleInitial": re},
		}})
	}
	if spec.Location != "" {
		re := ciContains(spec.Location)
		groups = append(groups, bson.M{"$or": bson.A{
			bson.M{"city": re},
			bson.M{"state": re},
			bson.M{"zipCode": re},
		}})
	}
	if len(groups) > 0 {
		filter["$and"] = groups
	}

	if spec.Specialty != "" {
		filter["specialtyName"] = ciContains(spec.Specialty)
	}
	if spec.Gender != "" {
		filter["gender"] = spec.Gender
	}
	if spec.AcceptingNewPatients != nil {
		filter["acceptingNewPatients"] = *spec.AcceptingNewPatients
	}
	if spec.VirtualCare != nil {
		filter["virtualCareAvailable"] = *spec.VirtualCare
	}
	if spec.HospitalAffiliations != nil {
		filter["hospitalAffiliations"] = *spec.HospitalAffiliations
	}
	if spec.BoardCertified != nil {
		filter["boardCertified"] = *spec.BoardCertified
	}
	if spec.MinExperience > 0 {
		filter["yearsOfExperience"] = bson.M{"$gte": spec.MinExperience}
	}
	if len(spec.Languages) > 0 {
		filter["languagesSpoken"] = bson.M{"$in": spec.Languages}
	}
	return filter
}

func ciContains(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// sortDocument maps a sort key to a mongo sort. The _id tie-break keeps the
// order deterministic across pages for equal keys.
func sortDocument(sortBy string) bson.D {
	switch sortBy {
	case query.SortRating:
		return bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}
	case query.SortNameAsc:
		return bson.D{{Key: "firstName", Value: 1}, {Key: "lastName", Value: 1}, {Key: "_id", Value: 1}}
	case query.SortNameDesc:
		return bson.D{{Key: "firstName", Value: -1}, {Key: "lastName", Value: -1}, {Key: "_id", Value: 1}}
	case query.SortExperience:
		return bson.D{{Key: "yearsOfExperience", Value: -1}, {Key: "_id", Value: 1}}
	}
	return nil
}

// providerView renders a provider with admin-hidden fields removed.
func providerView(p *models.Provider, vis settings.Settings) gin.H {
	view := gin.H{
		"id":               p.ID,
		"profileImage":     p.ProfileImage,
		"firstName":        p.FirstName,
		"middleInitial":    p.MiddleInitial,
		"lastName":         p.LastName,
		"degree":           p.Degree,
		"addressLine1":     p.AddressLine1,
		"addressLine2":     p.AddressLine2,
		"city":             p.City,
		"state":            p.State,
		"county":           p.County,
		"country":          p.Country,
		"zipCode":          p.ZipCode,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"workingHours":     p.WorkingHours,
		"acceptedAllPlans": p.AcceptedAllPlans,
	}

	include := func(key string, field string, value interface{}) {
		if vis.Enabled(key) {
			view[field] = value
		}
	}
	include(settings.KeyTypeOfProvider, "type", p.Type)
	include(settings.KeySpecialtyName, "specialtyName", p.SpecialtyName)
	include(settings.KeyPhoneNumber, "phoneNumber", p.PhoneNumber)
	include(settings.KeyEmail, "emailId", p.EmailID)
	include(settings.KeyYearsExperience, "yearsOfExperience", p.YearsOfExperience)
	include(settings.KeyRating, "rating", p.Rating)
	include(settings.KeyAcceptingStatus, "acceptingNewPatients", p.AcceptingNewPatients)
	include(settings.KeyVirtualCare, "virtualCareAvailable", p.VirtualCareAvailable)
	include(settings.KeyHospitalAffil, "hospitalAffiliations", p.HospitalAffiliations)
	include(settings.KeyBoardCertified, "boardCertified", p.BoardCertified)
	include(settings.KeyBoardName, "boardName", p.BoardName)
	include(settings.KeyAffiliationName, "affiliationName", p.AffiliationName)
	include(settings.KeyGender, "gender", p.Gender)
	include(settings.KeyNPI, "npiId", p.NpiID)
	include(settings.KeyLanguages, "languagesSpoken", p.LanguagesSpoken)
	include(settings.KeyPlanName, "planName", p.PlanName)
	return view
}
