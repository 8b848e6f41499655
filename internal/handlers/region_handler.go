package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crimemap/internal/services"
)

// RegionHandler serves the administrative region hierarchy.
type RegionHandler struct {
	regionService services.RegionServicer
}

// NewRegionHandler creates a new RegionHandler
func NewRegionHandler(regionService services.RegionServicer) *RegionHandler {
	return &RegionHandler{regionService: regionService}
}

// GetProvinsi handles the retrieval of all provinces
// @Summary     Get all provinces
// @Description Get all provinces in alphabetical order
// @Tags        regions
// @Produce     json
// @Success     200 {array} models.Provinsi "List of provinces"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /regions/provinsi [get]
func (h *RegionHandler) GetProvinsi(c *gin.Context) {
	provinsi, err := h.regionService.GetProvinsi()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"provinsi": provinsi})
}

// GetKabupatenKota handles the retrieval of a province's regencies and cities
// @Summary     Get regencies and cities
// @Description Get the regencies and cities of a province in alphabetical order
// @Tags        regions
// @Produce     json
// @Param       id path int true "Province ID"
// @Success     200 {array} models.KabupatenKota "List of regencies and cities"
// @Failure     400 {object} ErrorResponse "Invalid province ID"
// @Failure     404 {object} ErrorResponse "Province not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /regions/provinsi/{id}/kabupaten-kota [get]
func (h *RegionHandler) GetKabupatenKota(c *gin.Context) {
	provinsiID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	kabupatenKota, err := h.regionService.GetKabupatenKota(provinsiID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"kabupaten_kota": kabupatenKota})
}

// GetKecamatan handles the retrieval of a regency's districts
// @Summary     Get districts
// @Description Get the districts of a regency or city in alphabetical order
// @Tags        regions
// @Produce     json
// @Param       id path int true "Regency/City ID"
// @Success     200 {array} models.Kecamatan "List of districts"
// @Failure     400 {object} ErrorResponse "Invalid regency/city ID"
// @Failure     404 {object} ErrorResponse "Regency/city not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /regions/kabupaten-kota/{id}/kecamatan [get]
func (h *RegionHandler) GetKecamatan(c *gin.Context) {
	kabupatenKotaID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	kecamatan, err := h.regionService.GetKecamatan(kabupatenKotaID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"kecamatan": kecamatan})
}
