package mysql

const createListingsSQL = `
CREATE TABLE IF NOT EXISTS listings (
  id             VARCHAR(64)  NOT NULL PRIMARY KEY,
  title          VARCHAR(255) NOT NULL,
  city           VARCHAR(128) NOT NULL,
  district       VARCHAR(128) NULL,
  property_type  VARCHAR(32)  NOT NULL,
  price          DECIMAL(12,2) NOT NULL,
  guest_capacity INT          NOT NULL,
  features       JSON         NOT NULL,
  description    TEXT         NOT NULL,
  image_url      VARCHAR(512) NULL,
  detail_url     VARCHAR(512) NULL,
  created_at     TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at     TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  INDEX idx_listings_city (city),
  INDEX idx_listings_type (property_type)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_turkish_ci
`

const upsertListingSQL = `
INSERT INTO listings
  (id, title, city, district, property_type, price, guest_capacity, features, description, image_url, detail_url)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title          = VALUES(title),
  city           = VALUES(city),
  district       = VALUES(district),
  property_type  = VALUES(property_type),
  price          = VALUES(price),
  guest_capacity = VALUES(guest_capacity),
  features       = VALUES(features),
  description    = VALUES(description),
  image_url      = VALUES(image_url),
  detail_url     = VALUES(detail_url),
  updated_at     = CURRENT_TIMESTAMP
`

// Full snapshot for the in-memory catalog; ordering keeps startup logs stable.
const loadListingsSQL = `
SELECT
  id,
  title,
  city,
  district,
  property_type,
  price,
  guest_capacity,
  features,
  description,
  image_url,
  detail_url
FROM listings
ORDER BY city, title
`
